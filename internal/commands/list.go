package commands

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"nse-stock-alert-bot/lib/helpers"
	"nse-stock-alert-bot/lib/translation"
)

// CommandList renders the requesting chat's alerts with best-effort live
// prices. Other chats' alerts are never shown.
func CommandList(chatID int64) string {
	log.Debug("processing command /list")

	owned := store.ListByOwner(chatID)
	if len(owned) == 0 {
		return translation.Translate("📋 You have no alerts. Use /add to create one.")
	}

	var out strings.Builder
	out.WriteString(translation.Translate("📋 <b>Your Alerts:</b>\n\n"))
	for _, alert := range owned {
		status := "Active"
		if !alert.Active {
			status = "Inactive"
		}

		out.WriteString(fmt.Sprintf(
			"<b>%s</b>\nStatus: %s\nCurrent: %s\nRange: ₹%s - ₹%s\n\n",
			helpers.EscapeHTML(alert.Symbol),
			status,
			currentPriceText(alert.Ticker),
			helpers.FormatPriceINR(alert.LowerPrice),
			helpers.FormatPriceINR(alert.UpperPrice),
		))
	}

	return out.String()
}
