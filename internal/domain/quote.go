package domain

import (
	"strings"
	"time"
)

// Display fallbacks used when the upstream returns no quote.
const (
	FallbackQuote  = "Content Unavailable"
	FallbackAuthor = "Author Name Unavailable"
)

// QuoteRecord is one quote returned by the quote-of-the-day provider.
// It is transient and never persisted verbatim.
type QuoteRecord struct {
	Quote          string
	Author         string
	BlockQuoteHTML string
}

// SavedQuote is a quote the user kept together with a personal reflection.
type SavedQuote struct {
	ID           string
	QuoteContent string
	QuoteAuthor  string
	Reflection   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSavedQuote validates the inputs and returns an unsaved record.
// The identity is assigned by the persistence gateway.
func NewSavedQuote(content, author, reflection string) (*SavedQuote, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("quote_content", "must not be empty")
	}

	if err := ValidateReflection(reflection); err != nil {
		return nil, err
	}

	return &SavedQuote{
		QuoteContent: content,
		QuoteAuthor:  author,
		Reflection:   reflection,
	}, nil
}

// ValidateReflection rejects empty or whitespace-only reflections.
func ValidateReflection(reflection string) error {
	if strings.TrimSpace(reflection) == "" {
		return NewValidationError("reflection", "must not be empty")
	}

	return nil
}

// DisplayQuote returns the first record's text or the fallback.
func DisplayQuote(records []QuoteRecord) string {
	if len(records) == 0 {
		return FallbackQuote
	}

	return records[0].Quote
}

// DisplayAuthor returns the first record's author or the fallback.
func DisplayAuthor(records []QuoteRecord) string {
	if len(records) == 0 {
		return FallbackAuthor
	}

	return records[0].Author
}

// ShareText formats a quote for sharing.
func ShareText(quote, author string) string {
	return quote + " - " + author
}

// SearchQuery is a free-text filter over saved quotes.
type SearchQuery struct {
	Text string
}

// NewSearchQuery trims surrounding whitespace from text.
func NewSearchQuery(text string) SearchQuery {
	return SearchQuery{Text: strings.TrimSpace(text)}
}

// IsEmpty reports whether the query matches everything.
func (q SearchQuery) IsEmpty() bool {
	return q.Text == ""
}
