package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch indica falha de rede ou status diferente de 200 na API de vendas
	ErrFetch = errors.New("sales api fetch failed")
	// ErrParse indica campo ausente ou malformado na resposta da API
	ErrParse = errors.New("sales api payload is invalid")
	// ErrEmptyResult indica que nenhum registro restou após os filtros
	ErrEmptyResult = errors.New("no sales records after filtering")
)

// FetchError é a falha da requisição à API de vendas
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s returned status %d", ErrFetch, e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", ErrFetch, e.URL, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrFetch, e.URL)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// ParseError aponta o registro e o campo que não passaram na validação.
// Index é -1 quando o corpo inteiro não pôde ser decodificado.
type ParseError struct {
	Index int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	msg := ErrParse.Error()
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s: record %d", msg, e.Index)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: field %q", msg, e.Field)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s: value %q", msg, e.Value)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
