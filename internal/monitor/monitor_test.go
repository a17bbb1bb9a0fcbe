package monitor

import (
	"strings"
	"sync"
	"testing"
	"time"

	"nse-stock-alert-bot/internal/registry"
	"nse-stock-alert-bot/internal/types"
)

type fakeFetcher struct {
	prices map[string]float64
}

func (f *fakeFetcher) Fetch(ticker string) (float64, bool) {
	price, ok := f.prices[ticker]
	return price, ok
}

type sentMessage struct {
	chatID int64
	text   string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
	ch   chan sentMessage
}

func (n *fakeNotifier) Send(chatID int64, text string) error {
	n.mu.Lock()
	n.sent = append(n.sent, sentMessage{chatID, text})
	n.mu.Unlock()
	if n.ch != nil {
		n.ch <- sentMessage{chatID, text}
	}
	return nil
}

func (n *fakeNotifier) messages() []sentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentMessage(nil), n.sent...)
}

func infyAlert(chatID int64) types.Alert {
	return types.Alert{
		Symbol:     "INFY",
		Ticker:     "INFY.NS",
		LowerPrice: 1350,
		UpperPrice: 1550,
		ChatID:     chatID,
	}
}

func findAlert(t *testing.T, store *registry.Registry, chatID int64, symbol string) types.Alert {
	t.Helper()
	for _, alert := range store.ListByOwner(chatID) {
		if alert.Symbol == symbol {
			return alert
		}
	}
	t.Fatalf("no alert %s for chat %d", symbol, chatID)
	return types.Alert{}
}

func TestSweepUpperBreachFiresOnce(t *testing.T) {
	store := registry.New()
	store.Upsert(infyAlert(42))

	notifier := &fakeNotifier{}
	s := New(store, &fakeFetcher{prices: map[string]float64{"INFY.NS": 1560}}, notifier)

	s.sweep(store.SnapshotActive())

	sent := notifier.messages()
	if len(sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(sent))
	}
	if sent[0].chatID != 42 || !strings.Contains(sent[0].text, "UPPER BREACH") {
		t.Errorf("unexpected notification: %+v", sent[0])
	}

	alert := findAlert(t, store, 42, "INFY")
	if alert.Active || !alert.UpperSent {
		t.Errorf("alert not deactivated after breach: %+v", alert)
	}

	// The entry is inactive now; further price movement sends nothing.
	s.sweep(store.SnapshotActive())
	if got := notifier.messages(); len(got) != 1 {
		t.Errorf("sent %d notifications after second sweep, want 1", len(got))
	}
}

func TestSweepLowerBreachFiresOnce(t *testing.T) {
	store := registry.New()
	store.Upsert(infyAlert(42))

	notifier := &fakeNotifier{}
	s := New(store, &fakeFetcher{prices: map[string]float64{"INFY.NS": 1340}}, notifier)

	s.sweep(store.SnapshotActive())
	s.sweep(store.SnapshotActive())

	sent := notifier.messages()
	if len(sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(sent))
	}
	if !strings.Contains(sent[0].text, "LOWER BREACH") {
		t.Errorf("unexpected notification text: %s", sent[0].text)
	}

	alert := findAlert(t, store, 42, "INFY")
	if alert.Active || !alert.LowerSent || alert.UpperSent {
		t.Errorf("unexpected alert state: %+v", alert)
	}
}

func TestSweepPriceInRangeDoesNothing(t *testing.T) {
	store := registry.New()
	store.Upsert(infyAlert(42))

	notifier := &fakeNotifier{}
	s := New(store, &fakeFetcher{prices: map[string]float64{"INFY.NS": 1450}}, notifier)

	s.sweep(store.SnapshotActive())

	if len(notifier.messages()) != 0 {
		t.Error("in-range price produced a notification")
	}
	alert := findAlert(t, store, 42, "INFY")
	if !alert.Active || alert.UpperSent || alert.LowerSent {
		t.Errorf("in-range sweep mutated the alert: %+v", alert)
	}
}

func TestSweepQuoteOutageLeavesAlertUntouched(t *testing.T) {
	store := registry.New()
	store.Upsert(infyAlert(42))

	notifier := &fakeNotifier{}
	s := New(store, &fakeFetcher{prices: map[string]float64{}}, notifier)

	s.sweep(store.SnapshotActive())

	if len(notifier.messages()) != 0 {
		t.Error("quote outage produced a notification")
	}
	alert := findAlert(t, store, 42, "INFY")
	if !alert.Active || alert.UpperSent || alert.LowerSent {
		t.Errorf("quote outage mutated the alert: %+v", alert)
	}
}

func TestSweepToleratesConcurrentRemove(t *testing.T) {
	store := registry.New()
	store.Upsert(infyAlert(42))

	snapshot := store.SnapshotActive()
	// The alert is removed between the snapshot and the breach mark.
	store.RemoveIfOwner("INFY", 42)

	notifier := &fakeNotifier{}
	s := New(store, &fakeFetcher{prices: map[string]float64{"INFY.NS": 1560}}, notifier)
	s.sweep(snapshot)

	if len(store.ListByOwner(42)) != 0 {
		t.Error("MarkBreach resurrected a removed alert")
	}
}

func TestEnsureStartedRunsLoopOnce(t *testing.T) {
	store := registry.New()
	store.Upsert(infyAlert(42))

	notifier := &fakeNotifier{ch: make(chan sentMessage, 4)}
	s := New(store, &fakeFetcher{prices: map[string]float64{"INFY.NS": 1560}}, notifier)
	s.idleInterval = time.Millisecond
	s.sweepInterval = time.Millisecond
	defer s.Stop()

	s.EnsureStarted()
	s.EnsureStarted()

	select {
	case msg := <-notifier.ch:
		if msg.chatID != 42 {
			t.Errorf("notification sent to chat %d, want 42", msg.chatID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no notification within 2s")
	}

	// One-shot: the loop keeps running but the breached entry stays quiet.
	select {
	case msg := <-notifier.ch:
		t.Errorf("unexpected second notification: %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}
