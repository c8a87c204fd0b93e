package domain

import (
	"errors"
	"fmt"
	"strings"
)

// AuthorizationStatus is the user's notification permission.
type AuthorizationStatus int

const (
	AuthorizationNotDetermined AuthorizationStatus = iota
	AuthorizationDenied
	AuthorizationAuthorized
	AuthorizationProvisional
	AuthorizationEphemeral
)

var authorizationNames = map[AuthorizationStatus]string{
	AuthorizationNotDetermined: "notDetermined",
	AuthorizationDenied:        "denied",
	AuthorizationAuthorized:    "authorized",
	AuthorizationProvisional:   "provisional",
	AuthorizationEphemeral:     "ephemeral",
}

// String returns the status name.
func (s AuthorizationStatus) String() string {
	if name, ok := authorizationNames[s]; ok {
		return name
	}

	return "unknown"
}

// CanSchedule reports whether reminders may be delivered.
func (s AuthorizationStatus) CanSchedule() bool {
	switch s {
	case AuthorizationAuthorized, AuthorizationProvisional, AuthorizationEphemeral:
		return true
	default:
		return false
	}
}

// ParseAuthorizationStatus parses a status name case-insensitively.
func ParseAuthorizationStatus(s string) (AuthorizationStatus, error) {
	for status, name := range authorizationNames {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}

	return AuthorizationNotDetermined, NewValidationErrorWithValue("authorization", "unknown status", s)
}

// Reminder errors.
var (
	ErrAuthorizationDenied = errors.New("requestAuthorizationFailure")
	ErrFailedToSetReminder = errors.New("failedToSetNotificationTime")
)

// NotificationTime is the wall-clock time a daily reminder fires.
type NotificationTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// Validate checks the hour and minute ranges.
func (t NotificationTime) Validate() error {
	if t.Hour < 0 || t.Hour > 23 {
		return NewValidationErrorWithValue("hour", "must be between 0 and 23", t.Hour)
	}

	if t.Minute < 0 || t.Minute > 59 {
		return NewValidationErrorWithValue("minute", "must be between 0 and 59", t.Minute)
	}

	return nil
}

// String formats as HH:MM.
func (t NotificationTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseNotificationTime parses HH:MM.
func ParseNotificationTime(s string) (NotificationTime, error) {
	var t NotificationTime
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return t, NewValidationErrorWithValue("time", "expected HH:MM", s)
	}

	return t, t.Validate()
}

// ReminderPreferenceKey is the preference key the reminder time is stored under.
const ReminderPreferenceKey = "notificationTime"

// NotificationContent is what a delivered reminder shows.
type NotificationContent struct {
	Title string
	Body  string
}

// DailyQuoteReminder is the content of the daily reminder.
var DailyQuoteReminder = NotificationContent{
	Title: "Quotes",
	Body:  "Today's quote is available. Tap here to see it.",
}

// Appearance is the preferred color scheme.
type Appearance int

const (
	AppearanceUnspecified Appearance = iota
	AppearanceLight
	AppearanceDark
)

// AppearancePreferenceKey is the preference key the appearance is stored under.
const AppearancePreferenceKey = "selectedAppearance"

// String returns the appearance name.
func (a Appearance) String() string {
	switch a {
	case AppearanceLight:
		return "light"
	case AppearanceDark:
		return "dark"
	default:
		return "unspecified"
	}
}

// AppearanceFromInt maps a stored value, treating unknown values as unspecified.
func AppearanceFromInt(v int) Appearance {
	switch Appearance(v) {
	case AppearanceLight, AppearanceDark:
		return Appearance(v)
	default:
		return AppearanceUnspecified
	}
}

// ParseAppearance parses an appearance name.
func ParseAppearance(s string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unspecified", "system":
		return AppearanceUnspecified, nil
	case "light":
		return AppearanceLight, nil
	case "dark":
		return AppearanceDark, nil
	default:
		return AppearanceUnspecified, NewValidationErrorWithValue("appearance", "must be light, dark or unspecified", s)
	}
}
