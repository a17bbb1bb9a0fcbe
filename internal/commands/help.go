package commands

import (
	"nse-stock-alert-bot/lib/translation"
)

// CommandHelp returns the static usage text. No state is read, so repeated
// calls return identical output.
func CommandHelp() string {
	return translation.Translate("🤖 <b>NSE Stock Alert Bot</b>\n\n" +
		"<b>Commands:</b>\n" +
		"➕ /add STOCK LOWER UPPER\n" +
		"   Example: /add INFY 1350 1550\n\n" +
		"✏️ /update STOCK LOWER UPPER\n" +
		"   Example: /update INFY 1340 1560\n\n" +
		"📋 /list - Show all your alerts\n" +
		"❌ /remove STOCK - Remove an alert\n" +
		"   Example: /remove INFY\n\n" +
		"💡 /help - Show this message\n\n" +
		"<b>Notes:</b>\n" +
		"• Uses NSE symbols (e.g., RELIANCE, TCS, INFY)\n" +
		"• Checks every 60 seconds\n" +
		"• An alert fires once per bound, then needs /update to re-arm")
}
