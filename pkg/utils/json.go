package utils

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// PrettyJson serializa o valor indentado, para logs de depuração
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(in)
		if err != nil {
			logrus.WithError(err).Debug("utils: erro ao serializar valor")
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		logrus.WithError(err).Debug("utils: erro ao indentar json")
		return string(buffer)
	}

	return out.String()
}
