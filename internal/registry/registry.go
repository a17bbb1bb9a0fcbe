package registry

import (
	"sort"
	"sync"

	"nse-stock-alert-bot/internal/types"
)

// Direction identifies which threshold a price crossed.
type Direction int

const (
	BreachUpper Direction = iota
	BreachLower
)

// Registry is the single source of truth for alert state. Alerts are keyed
// by symbol alone, so a second chat adding the same symbol takes the alert
// over. Every operation is serialized by one mutex; callers get copies and
// never see a half-updated entry.
type Registry struct {
	mu     sync.Mutex
	alerts map[string]types.Alert
}

func New() *Registry {
	return &Registry{
		alerts: make(map[string]types.Alert),
	}
}

// Upsert replaces any existing entry for the alert's symbol, regardless of
// the previous owner. The entry comes up active with both sent flags clear.
func (r *Registry) Upsert(alert types.Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert.Active = true
	alert.UpperSent = false
	alert.LowerSent = false
	r.alerts[alert.Symbol] = alert
}

// UpdateIfOwner re-arms the entry with new thresholds. It reports false and
// mutates nothing when the symbol is unknown or owned by another chat.
func (r *Registry) UpdateIfOwner(symbol string, chatID int64, lower, upper float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert, ok := r.alerts[symbol]
	if !ok || alert.ChatID != chatID {
		return false
	}

	alert.LowerPrice = lower
	alert.UpperPrice = upper
	alert.Active = true
	alert.UpperSent = false
	alert.LowerSent = false
	r.alerts[symbol] = alert
	return true
}

// RemoveIfOwner deletes the entry only when the requesting chat owns it.
func (r *Registry) RemoveIfOwner(symbol string, chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert, ok := r.alerts[symbol]
	if !ok || alert.ChatID != chatID {
		return false
	}

	delete(r.alerts, symbol)
	return true
}

// SnapshotActive returns copies of all active entries ordered by symbol.
// The caller may iterate and do network I/O without holding the lock.
func (r *Registry) SnapshotActive() []types.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()

	var snapshot []types.Alert
	for _, alert := range r.alerts {
		if alert.Active {
			snapshot = append(snapshot, alert)
		}
	}

	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].Symbol < snapshot[j].Symbol
	})
	return snapshot
}

// MarkBreach records that a notification fired for the given direction and
// deactivates the entry. A concurrent remove may have already dropped the
// symbol; that is a no-op here, not an error.
func (r *Registry) MarkBreach(symbol string, direction Direction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert, ok := r.alerts[symbol]
	if !ok {
		return
	}

	switch direction {
	case BreachUpper:
		alert.UpperSent = true
	case BreachLower:
		alert.LowerSent = true
	}
	alert.Active = false
	r.alerts[symbol] = alert
}

// ListByOwner returns copies of the chat's entries ordered by symbol.
func (r *Registry) ListByOwner(chatID int64) []types.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []types.Alert
	for _, alert := range r.alerts {
		if alert.ChatID == chatID {
			owned = append(owned, alert)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].Symbol < owned[j].Symbol
	})
	return owned
}

// CountActive reports how many entries are currently active.
func (r *Registry) CountActive() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, alert := range r.alerts {
		if alert.Active {
			count++
		}
	}
	return count
}
