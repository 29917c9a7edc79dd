// Package notify tracks match-event notifications and the single popup the
// view shows for fresh events. A new event joins the bounded notification
// list unread and queues for the popup slot; promotion marks the record
// read, and the popup releases the slot to the next queued event when its
// countdown expires or it is closed. Dismissing removes the record.
package notify

import (
	"sync"
	"time"

	"github.com/okian/gully/internal/domain/model"
	"github.com/okian/gully/pkg/metrics"
)

// Default tracker configuration constants.
const (
	defaultCapacity = 20
	defaultPopupTTL = 5 * time.Second
)

// Popup is the currently displayed event with its countdown state.
type Popup struct {
	Event     model.Event `json:"event"`
	Remaining int         `json:"remaining_seconds"`
}

// Tracker owns the notification list and the popup slot. Safe for
// concurrent use.
type Tracker struct {
	mu       sync.RWMutex
	items    []model.Notification
	pending  []string
	capacity int
	popupTTL time.Duration
	now      func() time.Time

	activeID string
	deadline time.Time
}

// New creates a tracker with the configuration options applied.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		capacity: defaultCapacity,
		popupTTL: defaultPopupTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Append records a fresh event: newest-first in the list, unread, and
// queued for the popup slot. The oldest record falls off past capacity.
func (t *Tracker) Append(ev model.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append([]model.Notification{{Event: ev}}, t.items...)
	if len(t.items) > t.capacity {
		evicted := t.items[t.capacity:]
		t.items = t.items[:t.capacity]
		for _, n := range evicted {
			t.dropPendingLocked(n.Event.ID)
			if t.activeID == n.Event.ID {
				t.activeID = ""
			}
		}
	}
	t.pending = append(t.pending, ev.ID)
	t.reportLocked()
}

// Tick advances the popup lifecycle: an expired popup releases the slot,
// and a free slot promotes the oldest queued event still on the list.
func (t *Tracker) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if t.activeID != "" && !now.Before(t.deadline) {
		t.activeID = ""
	}
	if t.activeID == "" {
		t.promoteLocked(now)
	}
	t.reportLocked()
}

// promoteLocked activates the next queued event that still has a list
// entry. Showing an event counts as the user seeing it, so the record is
// marked read. Callers hold the lock.
func (t *Tracker) promoteLocked(now time.Time) {
	for len(t.pending) > 0 {
		id := t.pending[0]
		t.pending = t.pending[1:]
		idx, ok := t.findLocked(id)
		if !ok {
			continue
		}
		t.items[idx].Read = true
		t.activeID = id
		t.deadline = now.Add(t.popupTTL)
		metrics.RecordNotificationShown()
		return
	}
}

// Active returns the current popup, if any. The countdown is floored to
// whole seconds, never below zero.
func (t *Tracker) Active() (Popup, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.activeID == "" {
		return Popup{}, false
	}
	idx, ok := t.findLocked(t.activeID)
	if !ok {
		return Popup{}, false
	}
	remaining := int(t.deadline.Sub(t.now()) / time.Second)
	if remaining < 0 {
		remaining = 0
	}
	return Popup{Event: t.items[idx].Event, Remaining: remaining}, true
}

// ClosePopup releases the popup slot without touching the list entry; the
// record stays in the panel, already read from being shown.
func (t *Tracker) ClosePopup() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.activeID = ""
	t.reportLocked()
}

// MarkRead flips the read flag on a notification. Reading an already-read
// record is a no-op.
func (t *Tracker) MarkRead(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx, ok := t.findLocked(id)
	if !ok {
		return ErrUnknownNotification
	}
	t.items[idx].Read = true
	t.reportLocked()
	return nil
}

// MarkAllRead flips every record's read flag.
func (t *Tracker) MarkAllRead() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.items {
		t.items[i].Read = true
	}
	t.reportLocked()
}

// Dismiss removes a notification entirely. A dismissed record cannot come
// back; if it held the popup slot the slot is released.
func (t *Tracker) Dismiss(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx, ok := t.findLocked(id)
	if !ok {
		return ErrUnknownNotification
	}
	t.items = append(t.items[:idx], t.items[idx+1:]...)
	t.dropPendingLocked(id)
	if t.activeID == id {
		t.activeID = ""
	}
	metrics.RecordNotificationDismissed()
	t.reportLocked()
	return nil
}

// Snapshot returns a copy of the notification list, newest first.
func (t *Tracker) Snapshot() []model.Notification {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]model.Notification, len(t.items))
	copy(out, t.items)
	return out
}

// Unread returns how many records are still unread.
func (t *Tracker) Unread() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.unreadLocked()
}

// Len returns the number of retained records.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// Clear drops every record and releases the popup slot.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = nil
	t.pending = nil
	t.activeID = ""
	t.reportLocked()
}

func (t *Tracker) findLocked(id string) (int, bool) {
	for i := range t.items {
		if t.items[i].Event.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (t *Tracker) dropPendingLocked(id string) {
	for i, pid := range t.pending {
		if pid == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
}

func (t *Tracker) unreadLocked() int {
	n := 0
	for i := range t.items {
		if !t.items[i].Read {
			n++
		}
	}
	return n
}

func (t *Tracker) reportLocked() {
	metrics.UpdateUnreadNotifications(t.unreadLocked())
	metrics.UpdatePopupActive(t.activeID != "")
}
