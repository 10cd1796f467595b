package domain

import (
	"errors"
	"fmt"
)

// Taxonomía de errores visible para las páginas. El cliente HTTP del backend
// envuelve cada fallo en uno de estos sentinels (ver backend.APIError).
var (
	ErrNetwork        = errors.New("network error")
	ErrSessionExpired = errors.New("session expired")
	ErrCredentials    = errors.New("invalid credentials")
	ErrForbidden      = errors.New("permission denied")
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrConflict       = errors.New("duplicate record")
	ErrServer         = errors.New("server error")
	ErrUnknown        = errors.New("request failed")
	ErrInvalidInput   = errors.New("invalid input")
)

// ErrNotConfirmed borrado pedido sin el paso de confirmación.
var ErrNotConfirmed = fmt.Errorf("%w: confirm deletion first", ErrInvalidInput)

// Message devuelve el texto que se muestra en el banner de error.
// Cualquier error que no sea de la taxonomía se reduce al genérico.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var m interface{ UserMessage() string }
	if errors.As(err, &m) {
		return m.UserMessage()
	}
	if errors.Is(err, ErrInvalidInput) {
		return err.Error()
	}
	for _, known := range []error{ErrNetwork, ErrSessionExpired, ErrCredentials, ErrForbidden, ErrNotFound, ErrValidation, ErrConflict, ErrServer} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return ErrUnknown.Error()
}
