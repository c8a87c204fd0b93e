package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// SettingsHandler serves the reminder and appearance preferences.
type SettingsHandler struct {
	reminders  *app.ReminderService
	appearance *app.AppearanceService
}

// NewSettingsHandler creates the handler.
func NewSettingsHandler(reminders *app.ReminderService, appearance *app.AppearanceService) *SettingsHandler {
	return &SettingsHandler{reminders: reminders, appearance: appearance}
}

// GetReminder handles GET /api/v1/settings/reminder.
func (h *SettingsHandler) GetReminder(c *gin.Context) {
	h.respondReminder(c)
}

// PutReminder handles PUT /api/v1/settings/reminder. Enabling schedules the
// daily reminder, asking for permission when it was never decided.
func (h *SettingsHandler) PutReminder(c *gin.Context) {
	var req dto.ReminderRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.RespondWithValidationErrors(c, err)

		return
	}

	ctx := c.Request.Context()

	var err error
	if req.Enabled {
		err = h.reminders.Schedule(ctx, domain.NotificationTime{Hour: *req.Hour, Minute: *req.Minute})
	} else {
		err = h.reminders.Cancel(ctx)
	}

	if err != nil {
		dto.HandleError(c, err)

		return
	}

	h.respondReminder(c)
}

func (h *SettingsHandler) respondReminder(c *gin.Context) {
	settings, err := h.reminders.Settings(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.NewReminderResponse(settings))
}

// GetAppearance handles GET /api/v1/settings/appearance.
func (h *SettingsHandler) GetAppearance(c *gin.Context) {
	a, err := h.appearance.Get(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.NewAppearanceResponse(a))
}

// PutAppearance handles PUT /api/v1/settings/appearance.
func (h *SettingsHandler) PutAppearance(c *gin.Context) {
	var req dto.AppearanceRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.RespondWithValidationErrors(c, err)

		return
	}

	a, err := domain.ParseAppearance(req.Appearance)
	if err == nil {
		err = h.appearance.Set(c.Request.Context(), a)
	}

	if err != nil {
		dto.HandleError(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.NewAppearanceResponse(a))
}

// Register mounts the read routes on rg and the writes on write.
func (h *SettingsHandler) Register(rg, write *gin.RouterGroup) {
	rg.GET("/settings/reminder", h.GetReminder)
	rg.GET("/settings/appearance", h.GetAppearance)

	write.PUT("/settings/reminder", h.PutReminder)
	write.PUT("/settings/appearance", h.PutAppearance)
}
