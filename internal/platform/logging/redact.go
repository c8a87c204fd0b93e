package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtValue    = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	authzValue  = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)
	secretNames = []string{
		"password", "secret", "token", "apiKey", "api_key", "accessToken", "access_token",
		"refreshToken", "refresh_token", "authorization", "cookie", "zenquotes_key",
	}
	// Journal reflections are personal.
	journalNames = []string{"reflection", "Reflection"}
)

// DefaultRedactOptions returns the masq options applied to every handler.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(secretNames)+len(journalNames)+4)

	for _, name := range secretNames {
		opts = append(opts, masq.WithFieldName(name))
	}

	for _, name := range journalNames {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtValue),
		masq.WithRegex(authzValue),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr func that redacts with the
// default options plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
