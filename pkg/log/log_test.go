package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	t.Run("mantém um UUID recebido", func(t *testing.T) {
		id := uuid.New().String()

		ctx, got := WithCorrelationID(context.Background(), id)

		assert.Equal(t, id, got)
		assert.Equal(t, id, GetCorrelationID(ctx))
	})

	t.Run("gera um novo quando vazio ou inválido", func(t *testing.T) {
		for _, input := range []string{"", "abc", "<script>"} {
			ctx, got := WithCorrelationID(context.Background(), input)

			_, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, got, GetCorrelationID(ctx))
		}
	})

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestLogger_DevelopmentFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	l := &logger{entry: logrus.NewEntry(base)}

	ctx, id := WithCorrelationID(context.Background(), "")
	l.WithContext(ctx).WithFields(Fields{"render_id": "abc123", "user_agent": "curl"}).Info("ok")

	out := buf.String()
	assert.Contains(t, out, "render_id=abc123")
	assert.Contains(t, out, id)
	assert.NotContains(t, out, "user_agent")
}

func TestLogger_ProductionFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	l := &logger{entry: logrus.NewEntry(base)}

	l.WithField("user_agent", "curl").Info("ok")

	assert.Contains(t, buf.String(), "user_agent=curl")
}
