package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/quotes-service/internal/adapters/notify"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/mocks"
)

func settingsEngine(t *testing.T, cfg notify.Config) (*gin.Engine, *mocks.MockPreferenceStore) {
	t.Helper()

	prefs := mocks.NewMockPreferenceStore(t)
	notifier := notify.New(cfg)
	t.Cleanup(notifier.Close)

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewSettingsHandler(
		app.NewReminderService(app.ReminderServiceConfig{Notifier: notifier, Preferences: prefs}),
		app.NewAppearanceService(prefs),
	).Register(api, api)

	return engine, prefs
}

func TestSettingsHandler_ScheduleReminder(t *testing.T) {
	engine, prefs := settingsEngine(t, notify.Config{Authorization: domain.AuthorizationNotDetermined, GrantOnRequest: true})

	prefs.EXPECT().SetPreference(mock.Anything, domain.ReminderPreferenceKey, "07:45").Return(nil).Once()
	prefs.EXPECT().Preference(mock.Anything, domain.ReminderPreferenceKey).Return("07:45", true, nil)

	w := serve(engine, http.MethodPut, "/api/v1/settings/reminder", `{"enabled":true,"hour":7,"minute":45}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authorization":"authorized","scheduled":true,"time":"07:45"}`, w.Body.String())

	w = serve(engine, http.MethodPut, "/api/v1/settings/reminder", `{"enabled":false}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authorization":"authorized","scheduled":false,"time":"07:45"}`, w.Body.String())
}

func TestSettingsHandler_ReminderErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  notify.Config
		body string
		want int
		code string
	}{
		{"denied", notify.Config{Authorization: domain.AuthorizationDenied}, `{"enabled":true,"hour":8,"minute":0}`, http.StatusForbidden, "REMINDER_NOT_AUTHORIZED"},
		{"refused on request", notify.Config{Authorization: domain.AuthorizationNotDetermined}, `{"enabled":true,"hour":8,"minute":0}`, http.StatusForbidden, "REMINDER_NOT_AUTHORIZED"},
		{"hour out of range", notify.Config{Authorization: domain.AuthorizationAuthorized}, `{"enabled":true,"hour":24,"minute":0}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"missing minute", notify.Config{Authorization: domain.AuthorizationAuthorized}, `{"enabled":true,"hour":8}`, http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := settingsEngine(t, tt.cfg)

			w := serve(engine, http.MethodPut, "/api/v1/settings/reminder", tt.body)

			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestSettingsHandler_GetReminderNothingScheduled(t *testing.T) {
	engine, prefs := settingsEngine(t, notify.Config{Authorization: domain.AuthorizationProvisional})

	prefs.EXPECT().Preference(mock.Anything, domain.ReminderPreferenceKey).Return("", false, nil).Once()

	w := serve(engine, http.MethodGet, "/api/v1/settings/reminder", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authorization":"provisional","scheduled":false}`, w.Body.String())
}

func TestSettingsHandler_Appearance(t *testing.T) {
	engine, prefs := settingsEngine(t, notify.Config{})

	prefs.EXPECT().Preference(mock.Anything, domain.AppearancePreferenceKey).Return("1", true, nil).Once()
	prefs.EXPECT().SetPreference(mock.Anything, domain.AppearancePreferenceKey, "2").Return(nil).Once()

	w := serve(engine, http.MethodGet, "/api/v1/settings/appearance", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"appearance":"light","value":1}`, w.Body.String())

	w = serve(engine, http.MethodPut, "/api/v1/settings/appearance", `{"appearance":"dark"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"appearance":"dark","value":2}`, w.Body.String())

	w = serve(engine, http.MethodPut, "/api/v1/settings/appearance", `{"appearance":"sepia"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsHandler_AppearanceStoreDown(t *testing.T) {
	engine, prefs := settingsEngine(t, notify.Config{})

	prefs.EXPECT().Preference(mock.Anything, domain.AppearancePreferenceKey).
		Return("", false, domain.NewUnavailableError("sqlite", "closed")).Once()
	prefs.EXPECT().SetPreference(mock.Anything, domain.AppearancePreferenceKey, "0").
		Return(errors.New("database is locked")).Once()

	assert.Equal(t, http.StatusServiceUnavailable, serve(engine, http.MethodGet, "/api/v1/settings/appearance", "").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(engine, http.MethodPut, "/api/v1/settings/appearance", `{"appearance":"unspecified"}`).Code)
}
