package commands

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"nse-stock-alert-bot/config"
	"nse-stock-alert-bot/lib/helpers"
	"nse-stock-alert-bot/lib/translation"
)

// CommandUpdate re-arms an alert with new thresholds. Whether the symbol is
// unknown or owned by another chat, the reply is the same not-found text so
// non-owners learn nothing about other chats' alerts.
func CommandUpdate(chatID int64, args string) string {
	log.Debugf("processing command /update with arguments: %s", args)

	parts := strings.Fields(args)
	if len(parts) != 3 {
		return translation.Translate("❌ Use: /update STOCK LOWER UPPER\nExample: /update INFY 1340 1560")
	}

	lower, upper, errReply := parseThresholds(parts[1], parts[2])
	if errReply != "" {
		return errReply
	}

	symbol := strings.ToUpper(parts[0])
	if !store.UpdateIfOwner(symbol, chatID, lower, upper) {
		return translation.Translate("❌ No alert found for %s. Use /add to create one.",
			helpers.EscapeHTML(symbol))
	}

	return translation.Translate(
		"✅ <b>Alert Updated!</b>\n\nStock: %s\nStatus: Active\nCurrent Price: %s\nNew Lower Limit: ₹%s\nNew Upper Limit: ₹%s",
		helpers.EscapeHTML(symbol),
		currentPriceText(symbol+config.GetString("exchange_suffix")),
		helpers.FormatPriceINR(lower),
		helpers.FormatPriceINR(upper),
	)
}
