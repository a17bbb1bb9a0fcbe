package monitor

import (
	"fmt"
	"log"
	"sync"
	"time"

	"nse-stock-alert-bot/internal/registry"
	"nse-stock-alert-bot/internal/types"
	"nse-stock-alert-bot/lib/helpers"
)

// QuoteFetcher resolves a ticker to its latest traded price.
type QuoteFetcher interface {
	Fetch(ticker string) (float64, bool)
}

// Notifier delivers a breach message to the owning chat.
type Notifier interface {
	Send(chatID int64, text string) error
}

// Scheduler is the background service that evaluates active alerts against
// live prices. It is started at most once and never stops; with no active
// alerts it parks on a short idle poll so a fresh /add is noticed quickly.
type Scheduler struct {
	store         *registry.Registry
	quotes        QuoteFetcher
	notifier      Notifier
	idleInterval  time.Duration
	sweepInterval time.Duration

	startOnce sync.Once
	stop      chan struct{}
}

func New(store *registry.Registry, quotes QuoteFetcher, notifier Notifier) *Scheduler {
	return &Scheduler{
		store:         store,
		quotes:        quotes,
		notifier:      notifier,
		idleInterval:  5 * time.Second,
		sweepInterval: 60 * time.Second,
		stop:          make(chan struct{}),
	}
}

// EnsureStarted launches the sweep loop exactly once. Safe to call from
// every /add.
func (s *Scheduler) EnsureStarted() {
	s.startOnce.Do(func() {
		go s.run()
		log.Println("🚀 Alert monitor started.")
	})
}

// Stop terminates the loop. Only used by tests; in the process the monitor
// runs for the lifetime of the bot.
func (s *Scheduler) Stop() {
	close(s.stop)
}

func (s *Scheduler) run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("🔥 Panic recovered in alert monitor: %v. Restarting in 10 seconds...\n", r)
			time.Sleep(10 * time.Second)
			go s.run()
		}
	}()

	for {
		wait := s.idleInterval

		snapshot := s.store.SnapshotActive()
		if len(snapshot) > 0 {
			s.sweep(snapshot)
			wait = s.sweepInterval
		}

		select {
		case <-s.stop:
			return
		case <-time.After(wait):
		}
	}
}

// sweep evaluates one snapshot of active alerts. The snapshot was taken
// without the registry lock held during any of the network calls below, so
// entries may have been removed meanwhile; MarkBreach tolerates that.
func (s *Scheduler) sweep(alerts []types.Alert) {
	log.Println("🔄 Checking alerts...")

	for _, alert := range alerts {
		price, ok := s.quotes.Fetch(alert.Ticker)
		if !ok {
			// A feed outage must never drop an alert. Leave it for the
			// next pass.
			log.Printf("⚠️ No price data for ticker %s, skipping this pass\n", alert.Ticker)
			continue
		}

		switch {
		case price >= alert.UpperPrice && !alert.UpperSent:
			s.notify(alert, "UPPER BREACH", "Upper Threshold", price, alert.UpperPrice)
			s.store.MarkBreach(alert.Symbol, registry.BreachUpper)
		case price <= alert.LowerPrice && !alert.LowerSent:
			s.notify(alert, "LOWER BREACH", "Lower Threshold", price, alert.LowerPrice)
			s.store.MarkBreach(alert.Symbol, registry.BreachLower)
		}

		log.Printf("🔍 %s: ₹%.2f (range %.2f-%.2f)\n", alert.Symbol, price, alert.LowerPrice, alert.UpperPrice)
	}

	log.Println("✅ Alert check completed.")
}

func (s *Scheduler) notify(alert types.Alert, kind, boundLabel string, price, bound float64) {
	message := fmt.Sprintf(
		"🚨 <b>PRICE ALERT - %s</b> 🚨\n\nStock: <b>%s</b>\nCurrent Price: ₹<b>%s</b>\n%s: ₹%s\nTime: %s",
		kind,
		helpers.EscapeHTML(alert.Symbol),
		helpers.FormatPriceINR(price),
		boundLabel,
		helpers.FormatPriceINR(bound),
		time.Now().Format("2006-01-02 15:04:05"),
	)

	if err := s.notifier.Send(alert.ChatID, message); err != nil {
		log.Printf("❌ Failed to send breach notification to chat %d: %v\n", alert.ChatID, err)
	} else {
		log.Printf("✅ Breach notification sent to chat %d for %s\n", alert.ChatID, alert.Symbol)
	}
}
