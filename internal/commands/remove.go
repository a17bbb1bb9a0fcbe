package commands

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"nse-stock-alert-bot/lib/helpers"
	"nse-stock-alert-bot/lib/translation"
)

// CommandRemove deletes an alert owned by the requesting chat.
func CommandRemove(chatID int64, args string) string {
	log.Debugf("processing command /remove with arguments: %s", args)

	parts := strings.Fields(args)
	if len(parts) != 1 {
		return translation.Translate("❌ Use: /remove STOCK\nExample: /remove INFY")
	}

	symbol := strings.ToUpper(parts[0])
	if !store.RemoveIfOwner(symbol, chatID) {
		return translation.Translate("❌ No alert found for %s", helpers.EscapeHTML(symbol))
	}

	return translation.Translate("✅ Alert removed for %s", helpers.EscapeHTML(symbol))
}
