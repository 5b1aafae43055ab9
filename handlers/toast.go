package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// ToastKind selects the styling of a toast notification. The page script
// styles any kind; the handlers only raise errors.
type ToastKind string

const ToastError ToastKind = "error"

const (
	hxTriggerHeader = "HX-Trigger"
	toastEvent      = "showToast"
	flashCookieName = "flash_toast"
)

type toastPayload struct {
	Message string    `json:"message"`
	Type    ToastKind `json:"type"`
}

// SetToast adds a showToast event to the HX-Trigger response header, keeping
// any other events already present. A header that is not a JSON object is
// replaced.
//
// The same payload is stored in a short-lived flash cookie: the export form is
// a plain POST, so the browser never sees HX-Trigger and the next page load
// shows the toast instead.
func SetToast(e *core.RequestEvent, kind ToastKind, message string) {
	payload := toastPayload{Message: message, Type: kind}

	events := map[string]any{}
	if existing := e.Response.Header().Get(hxTriggerHeader); existing != "" {
		if err := json.Unmarshal([]byte(existing), &events); err != nil {
			zap.L().Warn("toast: replacing HX-Trigger that is not a JSON object",
				zap.String("value", existing), zap.Error(err))
			events = map[string]any{}
		}
	}
	events[toastEvent] = payload

	header, err := json.Marshal(events)
	if err != nil {
		zap.L().Warn("toast: failed to marshal HX-Trigger", zap.Error(err))
		return
	}
	e.Response.Header().Set(hxTriggerHeader, string(header))

	cookie, err := json.Marshal(payload)
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(string(cookie)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // read by the page script
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorToast answers with an error status, the message as plain text and an
// error toast. HX-Reswap: none keeps htmx from swapping the text into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, ToastError, message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
