package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jhoicas/comercio-dashboard/internal/domain"
	"github.com/jhoicas/comercio-dashboard/pkg/config"
)

// Source obtiene el cuerpo JSON crudo de una colección remota.
type Source interface {
	Fetch(ctx context.Context, key Key) ([]byte, error)
}

// Client cliente HTTP del servicio de registros.
type Client struct {
	base string
	http *http.Client
}

// NewClient construye el cliente con el timeout configurado.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		base: cfg.BaseURL,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Fetch trae la colección identificada por key. 404 se traduce a ErrNotFound;
// cualquier otro status no-2xx a ErrUpstream con el mensaje del colaborador.
func (c *Client) Fetch(ctx context.Context, key Key) ([]byte, error) {
	path, ok := paths[key]
	if !ok {
		return nil, fmt.Errorf("remote: recurso desconocido %q: %w", key, domain.ErrInvalidInput)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote: %s: %w", key, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("remote: %s: leer respuesta: %w", key, err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("remote: %s: %w", key, domain.ErrNotFound)
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("remote: %s: status %d: %s: %w",
			key, resp.StatusCode, bytes.TrimSpace(body), domain.ErrUpstream)
	}
	return body, nil
}

// Mutate envía una mutación (create/update/delete) al recurso. id nil aplica
// la operación sobre la colección completa (POST de creación, PUT de tema).
// El llamador es responsable de invalidar la clave en el caché tras el éxito.
func (c *Client) Mutate(ctx context.Context, method string, key Key, id *int64, payload any) error {
	path, ok := paths[key]
	if !ok {
		return fmt.Errorf("remote: recurso desconocido %q: %w", key, domain.ErrInvalidInput)
	}
	url := c.base + path
	if id != nil {
		url += "/" + strconv.FormatInt(*id, 10)
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("remote: %s: codificar payload: %w", key, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Id de correlación por mutación, para rastrear la operación en el upstream.
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote: %s %s: %w", method, key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("remote: %s %s: %w", method, key, domain.ErrNotFound)
	}
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("remote: %s %s: status %d: %s: %w",
			method, key, resp.StatusCode, bytes.TrimSpace(msg), domain.ErrUpstream)
	}
	return nil
}
