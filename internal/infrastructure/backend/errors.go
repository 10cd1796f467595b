package backend

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jhoicas/stitchdesk/internal/domain"
)

// Mensajes normalizados. Es el único contrato de error que ven las páginas.
const (
	msgNetwork            = "network error"
	msgTimeout            = "request timed out"
	msgSessionExpired     = "session expired"
	msgInvalidCredentials = "invalid credentials"
	msgForbidden          = "permission denied"
	msgNotFound           = "not found"
	msgValidation         = "validation failed"
	msgDuplicate          = "duplicate record"
	msgServer             = "server error"
	msgTooLarge           = "response too large"
	msgFallback           = "request failed"
)

// APIError error normalizado {message}. Kind es el sentinel de domain para
// usar con errors.Is.
type APIError struct {
	Status         int
	Message        string
	IsNetworkError bool
	Kind           error
}

func (e *APIError) Error() string       { return e.Message }
func (e *APIError) Unwrap() error       { return e.Kind }
func (e *APIError) UserMessage() string { return e.Message }

// errorBody forma de error del backend. message puede ser string o lista
// de strings (validaciones).
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

// serverMessage extrae el mensaje del cuerpo; las listas se unen con ", ".
func serverMessage(body []byte) string {
	var eb errorBody
	if len(body) == 0 || json.Unmarshal(body, &eb) != nil {
		return ""
	}
	if len(eb.Message) > 0 {
		var single string
		if err := json.Unmarshal(eb.Message, &single); err == nil {
			return strings.TrimSpace(single)
		}
		var many []string
		if err := json.Unmarshal(eb.Message, &many); err == nil {
			parts := make([]string, 0, len(many))
			for _, m := range many {
				if m = strings.TrimSpace(m); m != "" {
					parts = append(parts, m)
				}
			}
			return strings.Join(parts, ", ")
		}
	}
	return strings.TrimSpace(eb.Error)
}

// normalize aplica la tabla de estados (salvo 401, que requiere sesión).
func normalize(status int, body []byte) *APIError {
	msg := serverMessage(body)
	orDefault := func(def string) string {
		if msg != "" {
			return msg
		}
		return def
	}
	switch {
	case status == http.StatusForbidden:
		return &APIError{Status: status, Message: msgForbidden, Kind: domain.ErrForbidden}
	case status == http.StatusNotFound:
		return &APIError{Status: status, Message: orDefault(msgNotFound), Kind: domain.ErrNotFound}
	case status == http.StatusBadRequest:
		return &APIError{Status: status, Message: orDefault(msgValidation), Kind: domain.ErrValidation}
	case status == http.StatusConflict:
		return &APIError{Status: status, Message: orDefault(msgDuplicate), Kind: domain.ErrConflict}
	case status >= http.StatusInternalServerError:
		return &APIError{Status: status, Message: msgServer, Kind: domain.ErrServer}
	default:
		return &APIError{Status: status, Message: orDefault(msgFallback), Kind: domain.ErrUnknown}
	}
}
