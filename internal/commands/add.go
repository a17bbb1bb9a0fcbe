package commands

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"nse-stock-alert-bot/config"
	"nse-stock-alert-bot/internal/types"
	"nse-stock-alert-bot/lib/helpers"
	"nse-stock-alert-bot/lib/translation"
)

// CommandAdd creates or overwrites the alert for a symbol. The alert is
// stored before the quote lookup, so an unreachable feed still leaves the
// alert armed; only the confirmation text degrades.
func CommandAdd(chatID int64, args string) string {
	log.Debugf("processing command /add with arguments: %s", args)

	parts := strings.Fields(args)
	if len(parts) != 3 {
		return translation.Translate("❌ Use: /add STOCK LOWER UPPER\nExample: /add INFY 1350 1550")
	}

	lower, upper, errReply := parseThresholds(parts[1], parts[2])
	if errReply != "" {
		return errReply
	}

	symbol := strings.ToUpper(parts[0])
	ticker := symbol + config.GetString("exchange_suffix")

	store.Upsert(types.Alert{
		Symbol:     symbol,
		Ticker:     ticker,
		LowerPrice: lower,
		UpperPrice: upper,
		ChatID:     chatID,
	})
	scheduler.EnsureStarted()

	return translation.Translate(
		"✅ <b>Alert Added!</b>\n\nStock: %s\nCurrent Price: %s\nLower Limit: ₹%s\nUpper Limit: ₹%s",
		helpers.EscapeHTML(symbol),
		currentPriceText(ticker),
		helpers.FormatPriceINR(lower),
		helpers.FormatPriceINR(upper),
	)
}
