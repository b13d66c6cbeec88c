// Package apiclient es el adaptador HTTP de la API REST remota: adjunta el token
// Bearer, emite la señal de no autorizado ante cualquier 401 y expone una función
// tipada por recurso (implementaciones de los puertos de domain/repository).
package apiclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Jumata96/InventarioInteligenteFrontend/pkg/logger"
)

// apiPrefix todas las rutas de la API cuelgan de /api.
const apiPrefix = "/api"

// maxBody límite de lectura de respuestas.
const maxBody = 8 << 20

// TokenSource fuente de solo lectura del token de sesión.
type TokenSource interface {
	Token() string
}

// Config parámetros del cliente.
type Config struct {
	BaseURL            string
	PageBase           int // 0: la API numera páginas desde 0; 1: desde 1
	InsecureSkipVerify bool
	HTTPClient         *http.Client // opcional (tests)
}

// Client cliente HTTP de la API remota. Sin reintentos ni backoff: un fallo se
// devuelve de inmediato al llamador. El único límite de tiempo es el contexto.
type Client struct {
	baseURL  string
	pageBase int
	http     *http.Client
	tokens   TokenSource
	log      *logger.Logger

	mu           sync.RWMutex
	unauthorized []func()
}

// New construye el cliente.
func New(cfg Config, tokens TokenSource, log *logger.Logger) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if cfg.InsecureSkipVerify {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // certificado de desarrollo de la API
		}
		hc = &http.Client{Transport: transport}
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		pageBase: cfg.PageBase,
		http:     hc,
		tokens:   tokens,
		log:      log.Named("apiclient"),
	}
}

// OnUnauthorized registra un listener de la señal 401. Los listeners se ejecutan
// de forma síncrona, antes de que el llamador reciba el error.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unauthorized = append(c.unauthorized, fn)
}

func (c *Client) emitUnauthorized() {
	c.mu.RLock()
	listeners := append([]func(){}, c.unauthorized...)
	c.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

// apiPage traduce la página 1-based de la consola a la convención de la API.
func (c *Client) apiPage(page int) int {
	if page < 1 {
		page = 1
	}
	return page - 1 + c.pageBase
}

// do ejecuta la petición y devuelve el cuerpo crudo de una respuesta 2xx.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: serializar %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("apiclient: crear request %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("API inalcanzable")
		if ctx.Err() != nil {
			return nil, fmt.Errorf("apiclient: %s %s cancelada: %w", method, path, ctx.Err())
		}
		return nil, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("apiclient: leer respuesta %s %s: %w", method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("duration", time.Since(start)).
		Msg("llamada a la API")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	apiErr := &APIError{
		Method:  method,
		Path:    path,
		Status:  resp.StatusCode,
		Message: serverMessage(raw),
	}
	c.log.Warn().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Str("message", apiErr.Message).
		Msg("la API rechazó la petición")

	if resp.StatusCode == http.StatusUnauthorized {
		c.emitUnauthorized()
	}
	return nil, apiErr
}

// doJSON ejecuta la petición y decodifica la respuesta en out (si no es nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	raw, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("apiclient: decodificar %s %s: %w", method, path, err)
	}
	return nil
}

// pagedQuery parámetros page/pageSize/q; q solo se envía si hay filtro.
func (c *Client) pagedQuery(page, pageSize int, search string) url.Values {
	q := url.Values{}
	q.Set("page", fmt.Sprint(c.apiPage(page)))
	q.Set("pageSize", fmt.Sprint(pageSize))
	if s := strings.TrimSpace(search); s != "" {
		q.Set("q", s)
	}
	return q
}

func idPath(resource string, id int64, suffix ...string) string {
	p := fmt.Sprintf("/%s/%d", resource, id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}
