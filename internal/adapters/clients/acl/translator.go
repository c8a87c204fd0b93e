package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// maxResponseBytes caps how much of a downstream body is read.
const maxResponseBytes = 1 << 20

// BaseAdapter holds what every downstream adapter needs.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a base adapter for the named service.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{client: client, serviceName: serviceName}
}

// ServiceName returns the name of the external service.
func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client {
	return a.client
}

// GetBody issues a single GET and returns the raw body when the status
// equals want. Failures are *domain.FetchError values.
func (a *BaseAdapter) GetBody(ctx context.Context, path string, want int) ([]byte, int, error) {
	resp, err := a.client.Get(ctx, path)
	if err != nil {
		return nil, 0, MapTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != want {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

		return nil, resp.StatusCode, domain.NewInvalidStatusCode(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, MapTransportError(fmt.Errorf("%w: reading body: %w", clients.ErrRequestFailed, err))
	}

	return body, resp.StatusCode, nil
}

// DecodeJSON decodes body into T, rejecting trailing data.
func DecodeJSON[T any](body []byte) (T, error) {
	var result T

	if len(body) == 0 {
		return result, errors.New("empty response body")
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("decoding response: %w", err)
	}

	return result, nil
}

// TranslateSlice maps external DTOs onto domain values.
func TranslateSlice[E any, D any](items []E, translate func(*E) D) []D {
	result := make([]D, 0, len(items))

	for i := range items {
		result = append(result, translate(&items[i]))
	}

	return result
}
