package dto

import (
	"time"

	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// QuoteRecordResponse is one upstream quote record.
type QuoteRecordResponse struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	HTML   string `json:"html,omitempty"`
}

// TodayResponse is the presentation state of the quote of the day.
type TodayResponse struct {
	State    string                `json:"state"`
	Quote    string                `json:"quote"`
	Author   string                `json:"author"`
	Share    string                `json:"share"`
	HasError bool                  `json:"hasError"`
	Error    string                `json:"error,omitempty"`
	Records  []QuoteRecordResponse `json:"records,omitempty"`
}

// NewTodayResponse converts a presenter snapshot.
func NewTodayResponse(s app.QuoteSnapshot) TodayResponse {
	resp := TodayResponse{
		State:    s.State.String(),
		Quote:    s.Quote,
		Author:   s.Author,
		Share:    s.Share,
		HasError: s.HasError,
	}

	if s.Err != nil {
		resp.Error = s.Err.Error()
	}

	for _, r := range s.Records {
		resp.Records = append(resp.Records, QuoteRecordResponse{Quote: r.Quote, Author: r.Author, HTML: r.BlockQuoteHTML})
	}

	return resp
}

// SaveQuoteRequest is the body of POST /saved.
type SaveQuoteRequest struct {
	Content    string `json:"content"    validate:"required,notblank,max=4096"`
	Author     string `json:"author"     validate:"max=512"`
	Reflection string `json:"reflection" validate:"required,notblank,max=16384"`
}

// ReflectionRequest is the body of PUT /saved/:id/reflection.
type ReflectionRequest struct {
	Reflection string `json:"reflection" validate:"required,notblank,max=16384"`
}

// SavedQuoteURI binds the :id path parameter.
type SavedQuoteURI struct {
	ID string `uri:"id" validate:"required,uuid"`
}

// SavedQuotesQuery binds the list filters.
type SavedQuotesQuery struct {
	Query string `form:"q" validate:"max=256"`
}

// DeleteQuery binds the delete options.
type DeleteQuery struct {
	Wait bool `form:"wait"`
}

// SavedQuoteResponse is one journal entry.
type SavedQuoteResponse struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Reflection string    `json:"reflection"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewSavedQuoteResponse converts a saved quote.
func NewSavedQuoteResponse(q domain.SavedQuote) SavedQuoteResponse {
	return SavedQuoteResponse{
		ID:         q.ID,
		Content:    q.QuoteContent,
		Author:     q.QuoteAuthor,
		Reflection: q.Reflection,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

// SavedQuotesResponse is the journal list.
type SavedQuotesResponse struct {
	Query    string               `json:"query,omitempty"`
	Count    int                  `json:"count"`
	Items    []SavedQuoteResponse `json:"items"`
	HasError bool                 `json:"hasError,omitempty"`
}

// NewSavedQuotesResponse converts a store snapshot. Items is never null.
func NewSavedQuotesResponse(s app.SavedQuotesSnapshot) SavedQuotesResponse {
	items := make([]SavedQuoteResponse, 0, len(s.Quotes))
	for _, q := range s.Quotes {
		items = append(items, NewSavedQuoteResponse(q))
	}

	return SavedQuotesResponse{Query: s.Query, Count: len(items), Items: items, HasError: s.HasError}
}

// DeleteResponse acknowledges an accepted delete.
type DeleteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ReminderRequest is the body of PUT /settings/reminder. Disabling cancels
// the pending reminder; ranges are checked by the domain.
type ReminderRequest struct {
	Enabled bool `json:"enabled"`
	Hour    *int `json:"hour"    validate:"required_if=Enabled true"`
	Minute  *int `json:"minute"  validate:"required_if=Enabled true"`
}

// ReminderResponse reports the reminder settings.
type ReminderResponse struct {
	Authorization string `json:"authorization"`
	Scheduled     bool   `json:"scheduled"`
	Time          string `json:"time,omitempty"`
}

// NewReminderResponse converts reminder settings.
func NewReminderResponse(s app.ReminderSettings) ReminderResponse {
	resp := ReminderResponse{Authorization: s.Authorization.String(), Scheduled: s.Scheduled}
	if s.Time != nil {
		resp.Time = s.Time.String()
	}

	return resp
}

// AppearanceRequest is the body of PUT /settings/appearance.
type AppearanceRequest struct {
	Appearance string `json:"appearance" validate:"required,oneof=unspecified light dark"`
}

// AppearanceResponse reports the appearance preference.
type AppearanceResponse struct {
	Appearance string `json:"appearance"`
	Value      int    `json:"value"`
}

// NewAppearanceResponse converts an appearance.
func NewAppearanceResponse(a domain.Appearance) AppearanceResponse {
	return AppearanceResponse{Appearance: a.String(), Value: int(a)}
}

// HomeResponse is the landing view.
type HomeResponse struct {
	Today      TodayResponse `json:"today"`
	SavedCount int           `json:"savedCount"`
}

// DeleteAtRequest is the body of POST /saved/delete: positions in the list
// last returned by GET /saved.
type DeleteAtRequest struct {
	Offsets []int `json:"offsets" validate:"required,min=1,max=256,dive,min=0"`
}

// DeleteAtResponse lists the entries whose removal was accepted.
type DeleteAtResponse struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

// DeleteStatusPending marks a removal that is still being committed.
const DeleteStatusPending = "pending"
