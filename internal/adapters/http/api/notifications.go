// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/okian/gully/internal/adapters/notify"
	"github.com/okian/gully/internal/domain/model"
)

// NotificationHandler serves the notification list, per-record intents,
// and the popup slot.
type NotificationHandler struct {
	deps Dependencies
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(deps Dependencies) *NotificationHandler {
	return &NotificationHandler{deps: deps}
}

// notificationList mirrors the response shape for GET /notifications.
type notificationList struct {
	Notifications []model.Notification `json:"notifications"`
	Unread        int                  `json:"unread"`
}

// HandleList handles GET /notifications requests.
func (h *NotificationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, notificationList{
		Notifications: h.deps.Notifications(),
		Unread:        h.deps.UnreadCount(),
	})
}

// HandleReadAll handles POST /notifications/read-all requests.
func (h *NotificationHandler) HandleReadAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	h.deps.MarkAllNotificationsRead()
	writeAck(w)
}

// HandleByID routes POST /notifications/{id}/read and
// DELETE /notifications/{id}.
func (h *NotificationHandler) HandleByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/notifications/")
	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(rest, "/read"):
		h.markRead(w, strings.TrimSuffix(rest, "/read"))
	case r.Method == http.MethodDelete:
		h.dismiss(w, rest)
	default:
		http.NotFound(w, r)
	}
}

func (h *NotificationHandler) markRead(w http.ResponseWriter, id string) {
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := h.deps.MarkNotificationRead(id); err != nil {
		status, code := notificationErrStatus(err)
		writeError(w, status, code, err)
		return
	}
	writeAck(w)
}

func (h *NotificationHandler) dismiss(w http.ResponseWriter, id string) {
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := h.deps.DismissNotification(id); err != nil {
		status, code := notificationErrStatus(err)
		writeError(w, status, code, err)
		return
	}
	writeAck(w)
}

func notificationErrStatus(err error) (int, string) {
	if errors.Is(err, notify.ErrUnknownNotification) {
		return http.StatusNotFound, "not_found"
	}
	return http.StatusInternalServerError, "internal_error"
}

// popupResponse mirrors the response shape for GET /popup.
type popupResponse struct {
	Active bool          `json:"active"`
	Popup  *notify.Popup `json:"popup,omitempty"`
}

// HandlePopup handles GET /popup requests.
func (h *NotificationHandler) HandlePopup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	popup, ok := h.deps.Popup()
	resp := popupResponse{Active: ok}
	if ok {
		resp.Popup = &popup
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandlePopupClose handles POST /popup/close requests.
func (h *NotificationHandler) HandlePopupClose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	h.deps.ClosePopup()
	writeAck(w)
}
