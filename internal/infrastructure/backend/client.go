// Package backend es el único lugar que conoce el transporte hacia la API
// REST: decora cada petición con el token bearer y normaliza todo fallo a
// APIError. Los repositorios de este paquete implementan los puertos de
// domain/repository sobre ese cliente.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/stitchdesk/internal/domain"
	"github.com/jhoicas/stitchdesk/pkg/logger"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxJSONBody = 4 << 20
	defaultMaxBlobBody = 32 << 20
)

// Config del cliente. Los límites de cuerpo en cero toman 4 MiB para JSON
// y 32 MiB para descargas.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	LoginPath   string // ruta de login del shell, destino tras un 401
	MaxJSONBody int64
	MaxBlobBody int64
}

// SessionHolder lo que el cliente necesita de la sesión: leer el token y
// expirarla ante un 401. Expire devuelve true solo si había algo que limpiar.
type SessionHolder interface {
	Token() string
	Expire(ctx context.Context) bool
}

// Navigator abstrae la navegación forzada tras un 401.
type Navigator interface {
	CurrentPath() string
	Navigate(path string)
}

// Client cliente HTTP compartido por todas las sesiones.
type Client struct {
	baseURL     string
	loginPath   string
	maxJSONBody int64
	maxBlobBody int64
	httpClient  *http.Client
	log         *logger.Logger
}

// NewClient construye el cliente con timeout acotado (30 s por defecto).
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	loginPath := cfg.LoginPath
	if loginPath == "" {
		loginPath = "/login"
	}
	if log == nil {
		log = logger.Nop()
	}
	maxJSON, maxBlob := cfg.MaxJSONBody, cfg.MaxBlobBody
	if maxJSON <= 0 {
		maxJSON = defaultMaxJSONBody
	}
	if maxBlob <= 0 {
		maxBlob = defaultMaxBlobBody
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		loginPath:   loginPath,
		maxJSONBody: maxJSON,
		maxBlobBody: maxBlob,
		httpClient:  &http.Client{Timeout: timeout},
		log:         log.Component("backend"),
	}
}

// Bind devuelve una conexión atada a una sesión y a un navegador.
func (c *Client) Bind(sess SessionHolder, nav Navigator) *Conn {
	return &Conn{client: c, sess: sess, nav: nav}
}

// Anonymous conexión sin sesión (login y signup).
func (c *Client) Anonymous() *Conn {
	return &Conn{client: c}
}

// Conn peticiones en nombre de una sesión concreta.
type Conn struct {
	client *Client
	sess   SessionHolder
	nav    Navigator
}

// Blob respuesta binaria.
type Blob struct {
	ContentType string
	FileName    string
	Data        []byte
}

func (c *Conn) Get(ctx context.Context, path string, q url.Values, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, q, nil, out, c.client.maxJSONBody)
	return err
}

func (c *Conn) Post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, body, out, c.client.maxJSONBody)
	return err
}

func (c *Conn) Put(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, body, out, c.client.maxJSONBody)
	return err
}

func (c *Conn) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil, c.client.maxJSONBody)
	return err
}

// GetBlob descarga un archivo binario (exportación de reportes).
func (c *Conn) GetBlob(ctx context.Context, path string, q url.Values) (*Blob, error) {
	resp, err := c.do(ctx, http.MethodGet, path, q, nil, nil, c.client.maxBlobBody)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// do ejecuta la petición. Con out != nil decodifica JSON; con out == nil
// devuelve el cuerpo crudo como Blob.
func (c *Conn) do(ctx context.Context, method, path string, q url.Values, body, out any, limit int64) (*Blob, error) {
	target := c.client.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("backend: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("backend: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.sess != nil {
		if tok := c.sess.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.client.httpClient.Do(req)
	if err != nil {
		apiErr := transportError(err)
		c.client.log.Warn().Err(err).Str("method", method).Str("path", path).Msg(apiErr.Message)
		return nil, apiErr
	}
	defer resp.Body.Close()

	// Se lee un byte más que el límite para distinguir "cabe justo" de "truncado".
	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		apiErr := transportError(err)
		c.client.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("leer respuesta")
		return nil, apiErr
	}
	tooLarge := int64(len(raw)) > limit
	if tooLarge {
		raw = raw[:limit]
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, c.unauthorized(ctx, raw)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := normalize(resp.StatusCode, raw)
		c.client.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg(apiErr.Message)
		return nil, apiErr
	}

	if tooLarge {
		c.client.log.Warn().
			Str("method", method).
			Str("path", path).
			Int64("limit", limit).
			Msg(msgTooLarge)
		return nil, &APIError{Status: resp.StatusCode, Message: msgTooLarge, Kind: domain.ErrServer}
	}

	if out == nil {
		return &Blob{
			ContentType: resp.Header.Get("Content-Type"),
			FileName:    fileNameFrom(resp.Header.Get("Content-Disposition")),
			Data:        raw,
		}, nil
	}
	if err := decodeJSON(raw, out); err != nil {
		c.client.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("respuesta no decodificable")
		return nil, &APIError{Status: resp.StatusCode, Message: msgFallback, Kind: domain.ErrUnknown}
	}
	return nil, nil
}

// unauthorized limpia la sesión y fuerza la navegación al login una sola
// vez por expiración, sin importar qué página hizo la llamada.
func (c *Conn) unauthorized(ctx context.Context, body []byte) *APIError {
	if c.sess == nil {
		msg := serverMessage(body)
		if msg == "" {
			msg = msgInvalidCredentials
		}
		return &APIError{Status: http.StatusUnauthorized, Message: msg, Kind: domain.ErrCredentials}
	}
	if c.sess.Expire(ctx) && c.nav != nil && c.nav.CurrentPath() != c.client.loginPath {
		c.nav.Navigate(c.client.loginPath)
	}
	return &APIError{Status: http.StatusUnauthorized, Message: msgSessionExpired, Kind: domain.ErrSessionExpired}
}

func transportError(err error) *APIError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &APIError{Message: msgTimeout, IsNetworkError: true, Kind: domain.ErrNetwork}
	}
	return &APIError{Message: msgNetwork, IsNetworkError: true, Kind: domain.ErrNetwork}
}

// envelopeKeys claves admitidas junto a "data" en una respuesta envuelta.
var envelopeKeys = map[string]bool{"data": true, "message": true, "success": true, "status": true, "meta": true, "total": true}

// decodeJSON acepta el recurso directo o envuelto en {"data": ...}.
func decodeJSON(raw []byte, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err == nil {
			if data, ok := fields["data"]; ok && isEnvelope(fields) {
				return json.Unmarshal(data, out)
			}
		}
	}
	return json.Unmarshal(raw, out)
}

func isEnvelope(fields map[string]json.RawMessage) bool {
	for k := range fields {
		if !envelopeKeys[k] {
			return false
		}
	}
	return true
}

func fileNameFrom(disposition string) string {
	for _, part := range strings.Split(disposition, ";") {
		part = strings.TrimSpace(part)
		if name, ok := strings.CutPrefix(part, "filename="); ok {
			return strings.Trim(name, `"`)
		}
	}
	return ""
}
