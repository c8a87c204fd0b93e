package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/mocks"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const (
	idA = "2f1b6c2e-0d7a-4a59-9a57-5b8f0f5f7d10"
	idB = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	idC = "9b2d1d0e-3c8f-4f4e-8b7a-1f0e2d3c4b5a"
)

func savedEngine(t *testing.T) (*gin.Engine, *mocks.MockSavedQuoteGateway) {
	t.Helper()

	gw := mocks.NewMockSavedQuoteGateway(t)
	gw.EXPECT().Subscribe(mock.Anything).Return(func() {}).Once()

	store := app.NewSavedQuotesStore(app.SavedQuotesStoreConfig{Gateway: gw})
	journal := app.NewJournalService(app.JournalServiceConfig{Gateway: gw, Store: store})

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewSavedHandler(store, journal, gw).Register(api, api)

	return engine, gw
}

func withText(text string) any {
	return mock.MatchedBy(func(q domain.SearchQuery) bool { return q.Text == text })
}

func TestSavedHandler_List(t *testing.T) {
	engine, gw := savedEngine(t)

	gw.EXPECT().Fetch(mock.Anything, withText("emile")).
		Return([]domain.SavedQuote{{ID: idA, QuoteAuthor: "Émile Zola", QuoteContent: "c", Reflection: "r"}}, nil).Once()
	gw.EXPECT().Fetch(mock.Anything, withText("")).Return([]domain.SavedQuote{}, nil).Once()

	w := serve(engine, http.MethodGet, "/api/v1/saved?q=emile", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SavedQuotesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "emile", resp.Query)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Émile Zola", resp.Items[0].Author)

	w = serve(engine, http.MethodGet, "/api/v1/saved?q=%20%20", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0,"items":[]}`, w.Body.String())
}

func TestSavedHandler_ListStoreUnavailable(t *testing.T) {
	engine, gw := savedEngine(t)

	gw.EXPECT().Fetch(mock.Anything, withText("")).Return(nil, domain.NewLoadingError("locked")).Once()

	w := serve(engine, http.MethodGet, "/api/v1/saved", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrorCodeStoreUnavailable)
}

func TestSavedHandler_Get(t *testing.T) {
	engine, gw := savedEngine(t)

	gw.EXPECT().Get(mock.Anything, idA).Return(&domain.SavedQuote{ID: idA, Reflection: "r"}, nil).Once()
	gw.EXPECT().Get(mock.Anything, idB).Return(nil, domain.NewNotFoundError("saved quote", idB)).Once()

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v1/saved/"+idA, "").Code)
	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/api/v1/saved/"+idB, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(engine, http.MethodGet, "/api/v1/saved/nope", "").Code)
}

func TestSavedHandler_Create(t *testing.T) {
	engine, gw := savedEngine(t)

	gw.EXPECT().Insert(mock.Anything, mock.Anything).
		Run(func(_ context.Context, q *domain.SavedQuote) {
			q.ID = idA
		}).Return(nil).Once()
	gw.EXPECT().Save(mock.Anything).Return(nil).Once()

	w := serve(engine, http.MethodPost, "/api/v1/saved",
		`{"content":"Know thyself.","author":"Socrates","reflection":"Start here."}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/saved/"+idA, w.Header().Get("Location"))

	var resp dto.SavedQuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, idA, resp.ID)
	assert.Equal(t, "Socrates", resp.Author)
	assert.Equal(t, "Start here.", resp.Reflection)
}

func TestSavedHandler_CreateRejected(t *testing.T) {
	engine, gw := savedEngine(t)

	w := serve(engine, http.MethodPost, "/api/v1/saved", `{"content":"c","reflection":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"reflection":"must not be empty"`)

	w = serve(engine, http.MethodPost, "/api/v1/saved", `{"content":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrorCodeBadRequest)

	gw.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSavedHandler_CreateCommitFails(t *testing.T) {
	engine, gw := savedEngine(t)

	gw.EXPECT().Insert(mock.Anything, mock.Anything).
		Run(func(_ context.Context, q *domain.SavedQuote) { q.ID = idA }).Return(nil).Once()
	gw.EXPECT().Save(mock.Anything).Return(domain.NewSaveError("disk full")).Once()

	w := serve(engine, http.MethodPost, "/api/v1/saved", `{"content":"c","reflection":"r"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrorCodeSaveFailed)
}

func TestSavedHandler_UpdateReflection(t *testing.T) {
	engine, gw := savedEngine(t)

	gw.EXPECT().UpdateReflection(mock.Anything, idA, "Read it again.").Return(nil).Once()
	gw.EXPECT().Save(mock.Anything).Return(nil).Once()
	gw.EXPECT().Get(mock.Anything, idA).Return(&domain.SavedQuote{ID: idA, Reflection: "Read it again."}, nil).Once()
	gw.EXPECT().UpdateReflection(mock.Anything, idB, "x").Return(domain.NewNotFoundError("saved quote", idB)).Once()

	w := serve(engine, http.MethodPut, "/api/v1/saved/"+idA+"/reflection", `{"reflection":"Read it again."}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Read it again.")

	w = serve(engine, http.MethodPut, "/api/v1/saved/"+idB+"/reflection", `{"reflection":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavedHandler_Delete(t *testing.T) {
	tests := []struct {
		name   string
		target string
		task   *ports.DeleteTask
		want   int
	}{
		{"accepted", "/api/v1/saved/" + idA, ports.NewDeleteTask(idA), http.StatusAccepted},
		{"waited", "/api/v1/saved/" + idA + "?wait=true", ports.CompletedDeleteTask(idA, nil), http.StatusNoContent},
		{"commit failed", "/api/v1/saved/" + idA + "?wait=true", ports.CompletedDeleteTask(idA, domain.NewSaveError("locked")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, gw := savedEngine(t)
			gw.EXPECT().Delete(mock.Anything, idA).Return(tt.task, nil).Once()

			w := serve(engine, http.MethodDelete, tt.target, "")
			assert.Equal(t, tt.want, w.Code)

			if tt.want == http.StatusAccepted {
				assert.JSONEq(t, `{"id":"`+idA+`","status":"pending"}`, w.Body.String())
			}
		})
	}
}

func TestSavedHandler_DeleteUnknown(t *testing.T) {
	engine, gw := savedEngine(t)

	gw.EXPECT().Delete(mock.Anything, idC).Return(nil, domain.NewNotFoundError("saved quote", idC)).Once()

	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodDelete, "/api/v1/saved/"+idC, "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(engine, http.MethodDelete, "/api/v1/saved/1", "").Code)
}

func TestSavedHandler_DeleteAt(t *testing.T) {
	engine, gw := savedEngine(t)

	gw.EXPECT().Fetch(mock.Anything, withText("")).Return([]domain.SavedQuote{{ID: idA}, {ID: idB}, {ID: idC}}, nil).Once()
	gw.EXPECT().Delete(mock.Anything, idA).Return(ports.NewDeleteTask(idA), nil).Once()
	gw.EXPECT().Delete(mock.Anything, idC).Return(nil, domain.NewNotFoundError("saved quote", idC)).Once()

	require.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v1/saved", "").Code)

	w := serve(engine, http.MethodPost, "/api/v1/saved/delete", `{"offsets":[0,2,7]}`)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"ids":["`+idA+`"],"status":"pending"}`, w.Body.String())

	w = serve(engine, http.MethodPost, "/api/v1/saved/delete", `{"offsets":[-1]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSavedHandler_DismissError(t *testing.T) {
	engine, gw := savedEngine(t)

	gw.EXPECT().Fetch(mock.Anything, withText("")).
		Return([]domain.SavedQuote{{ID: idA, QuoteAuthor: "Seneca", QuoteContent: "c", Reflection: "r"}}, nil).Once()
	gw.EXPECT().Fetch(mock.Anything, withText("")).Return(nil, domain.NewLoadingError("locked")).Once()

	require.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v1/saved", "").Code)
	require.Equal(t, http.StatusServiceUnavailable, serve(engine, http.MethodGet, "/api/v1/saved", "").Code)

	w := serve(engine, http.MethodPost, "/api/v1/saved/dismiss", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SavedQuotesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.HasError)
	require.Len(t, resp.Items, 1, "the list from before the failure is kept")
	assert.Equal(t, idA, resp.Items[0].ID)
}
