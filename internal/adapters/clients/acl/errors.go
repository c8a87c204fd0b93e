package acl

import (
	"context"
	"errors"
	"net"
	"net/url"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// MapTransportError translates a failure where no usable response arrived.
func MapTransportError(err error) *domain.FetchError {
	if err == nil {
		return nil
	}

	var fe *domain.FetchError
	if errors.As(err, &fe) {
		return fe
	}

	switch {
	case errors.Is(err, clients.ErrInvalidPath), errors.Is(err, clients.ErrInvalidBaseURL):
		return domain.ErrInvalidURL
	case errors.Is(err, clients.ErrCircuitOpen),
		errors.Is(err, clients.ErrRequestFailed),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return domain.ErrTransportOffline
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.ErrTransportOffline
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return domain.ErrTransportOffline
	}

	return domain.NewUnknownFetchError(err.Error())
}
