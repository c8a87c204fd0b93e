package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// SavedHandler serves the reflection journal.
type SavedHandler struct {
	store   *app.SavedQuotesStore
	journal *app.JournalService
	reader  ports.SavedQuoteReader
}

// NewSavedHandler creates the handler.
func NewSavedHandler(store *app.SavedQuotesStore, journal *app.JournalService, reader ports.SavedQuoteReader) *SavedHandler {
	return &SavedHandler{store: store, journal: journal, reader: reader}
}

// List handles GET /api/v1/saved?q=. A blank q lists everything.
func (h *SavedHandler) List(c *gin.Context) {
	var query dto.SavedQuotesQuery
	if err := dto.BindQuery(c, &query); err != nil {
		dto.RespondWithValidationErrors(c, err)

		return
	}

	snap, err := h.store.FilterListByAuthorOrQuote(c.Request.Context(), query.Query)
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.NewSavedQuotesResponse(snap))
}

// DismissError handles POST /api/v1/saved/dismiss.
func (h *SavedHandler) DismissError(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSavedQuotesResponse(h.store.DismissError()))
}

// Get handles GET /api/v1/saved/:id.
func (h *SavedHandler) Get(c *gin.Context) {
	var uri dto.SavedQuoteURI
	if err := dto.BindURI(c, &uri); err != nil {
		dto.RespondWithValidationErrors(c, err)

		return
	}

	quote, err := h.reader.Get(c.Request.Context(), uri.ID)
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.NewSavedQuoteResponse(*quote))
}

// Create handles POST /api/v1/saved.
func (h *SavedHandler) Create(c *gin.Context) {
	var req dto.SaveQuoteRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.RespondWithValidationErrors(c, err)

		return
	}

	quote, err := h.journal.SaveReflection(c.Request.Context(), app.SaveReflectionInput{
		Content:    req.Content,
		Author:     req.Author,
		Reflection: req.Reflection,
	})
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.Header("Location", c.FullPath()+"/"+quote.ID)
	c.JSON(http.StatusCreated, dto.NewSavedQuoteResponse(*quote))
}

// UpdateReflection handles PUT /api/v1/saved/:id/reflection.
func (h *SavedHandler) UpdateReflection(c *gin.Context) {
	var uri dto.SavedQuoteURI
	if err := dto.BindURI(c, &uri); err != nil {
		dto.RespondWithValidationErrors(c, err)

		return
	}

	var req dto.ReflectionRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.RespondWithValidationErrors(c, err)

		return
	}

	quote, err := h.journal.EditReflection(c.Request.Context(), uri.ID, req.Reflection)
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.NewSavedQuoteResponse(*quote))
}

// Delete handles DELETE /api/v1/saved/:id. The removal is committed in the
// background and answered with 202; ?wait=true answers 204 once it is
// durable.
func (h *SavedHandler) Delete(c *gin.Context) {
	var uri dto.SavedQuoteURI
	if err := dto.BindURI(c, &uri); err != nil {
		dto.RespondWithValidationErrors(c, err)

		return
	}

	var query dto.DeleteQuery
	if err := dto.BindQuery(c, &query); err != nil {
		dto.RespondWithValidationErrors(c, err)

		return
	}

	ctx := c.Request.Context()

	task, err := h.journal.Delete(ctx, uri.ID)
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	if !query.Wait {
		c.JSON(http.StatusAccepted, dto.DeleteResponse{ID: task.ID, Status: dto.DeleteStatusPending})

		return
	}

	if err := task.Wait(ctx); err != nil {
		dto.HandleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAt handles POST /api/v1/saved/delete, removing entries by their
// position in the current list. Entries that could not be resolved are
// logged; the request fails only when none was accepted.
func (h *SavedHandler) DeleteAt(c *gin.Context) {
	var req dto.DeleteAtRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.RespondWithValidationErrors(c, err)

		return
	}

	ctx := c.Request.Context()

	tasks, err := h.journal.DeleteAt(ctx, req.Offsets)
	if err != nil && len(tasks) == 0 {
		dto.HandleError(c, err)

		return
	}

	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "partial delete", slog.Int("accepted", len(tasks)), slog.Any("error", err))
	}

	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}

	c.JSON(http.StatusAccepted, dto.DeleteAtResponse{IDs: ids, Status: dto.DeleteStatusPending})
}

// Register mounts the read routes on rg and the writes on write, which
// carries the auth guard.
func (h *SavedHandler) Register(rg, write *gin.RouterGroup) {
	rg.GET("/saved", h.List)
	rg.GET("/saved/:id", h.Get)

	write.POST("/saved", h.Create)
	write.POST("/saved/dismiss", h.DismissError)
	write.POST("/saved/delete", h.DeleteAt)
	write.PUT("/saved/:id/reflection", h.UpdateReflection)
	write.DELETE("/saved/:id", h.Delete)
}
