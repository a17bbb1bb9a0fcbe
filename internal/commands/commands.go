package commands

import (
	"nse-stock-alert-bot/internal/registry"
)

// QuoteFetcher resolves a ticker to its latest traded price.
type QuoteFetcher interface {
	Fetch(ticker string) (float64, bool)
}

// AlertScheduler is started lazily when the first alert is added.
type AlertScheduler interface {
	EnsureStarted()
}

var (
	store     *registry.Registry
	quotes    QuoteFetcher
	scheduler AlertScheduler
)

// Setup wires the command handlers to their collaborators. Must be called
// before any command is dispatched.
func Setup(r *registry.Registry, q QuoteFetcher, s AlertScheduler) {
	store = r
	quotes = q
	scheduler = s
}
