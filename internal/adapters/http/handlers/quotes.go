package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// QuoteHandler serves the quote of the day and the landing view.
type QuoteHandler struct {
	presenter *app.QuotePresenter
	journal   ports.SavedQuoteReader
}

// NewQuoteHandler creates the handler.
func NewQuoteHandler(presenter *app.QuotePresenter, journal ports.SavedQuoteReader) *QuoteHandler {
	return &QuoteHandler{presenter: presenter, journal: journal}
}

// Today handles GET /api/v1/quotes/today. A failed fetch is not an HTTP
// error: the body keeps the previously shown quote and author (empty
// before the first success) with hasError set.
func (h *QuoteHandler) Today(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewTodayResponse(h.presenter.GetQuoteOfTheDay(c.Request.Context())))
}

// DismissError handles POST /api/v1/quotes/today/dismiss. It clears the
// error flag without fetching again.
func (h *QuoteHandler) DismissError(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewTodayResponse(h.presenter.DismissError()))
}

// Home handles GET /api/v1/home.
func (h *QuoteHandler) Home(c *gin.Context) {
	summary, err := app.Home(c.Request.Context(), h.presenter, h.journal)
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.HomeResponse{
		Today:      dto.NewTodayResponse(summary.Today),
		SavedCount: summary.SavedCount,
	})
}

// Register mounts the read routes on rg and the writes on write.
func (h *QuoteHandler) Register(rg, write *gin.RouterGroup) {
	rg.GET("/quotes/today", h.Today)
	rg.GET("/home", h.Home)

	write.POST("/quotes/today/dismiss", h.DismissError)
}
