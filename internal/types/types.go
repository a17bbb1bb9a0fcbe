package types

// Alert is one tracked threshold set for a stock symbol.
type Alert struct {
	Symbol     string  `json:"symbol"`
	Ticker     string  `json:"ticker"`
	LowerPrice float64 `json:"lower_price"`
	UpperPrice float64 `json:"upper_price"`
	ChatID     int64   `json:"chat_id"`
	Active     bool    `json:"active"`
	UpperSent  bool    `json:"upper_sent"`
	LowerSent  bool    `json:"lower_sent"`
}
