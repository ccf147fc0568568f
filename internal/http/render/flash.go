package render

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Flash is a one-shot user notice surviving exactly one redirect.
type Flash struct {
	Level   string // "success" or "error"
	Message string
}

const (
	FlashSuccess = "success"
	FlashError   = "error"

	flashCookie = "budget_flash"
)

// SetFlash queues a notice for the next rendered page.
func SetFlash(w http.ResponseWriter, level, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(level + "|" + message))

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads and clears the pending notice, if any. A cookie that
// fails to decode is discarded silently.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}

	level, message, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}

	return &Flash{Level: level, Message: message}
}
