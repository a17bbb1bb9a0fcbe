package commands

import (
	"strconv"

	"nse-stock-alert-bot/lib/helpers"
	"nse-stock-alert-bot/lib/translation"
)

// parseThresholds validates the price pair shared by /add and /update.
// A non-empty reply means validation failed and should be sent back as-is.
func parseThresholds(lowerArg, upperArg string) (lower, upper float64, errReply string) {
	lower, errLower := strconv.ParseFloat(lowerArg, 64)
	upper, errUpper := strconv.ParseFloat(upperArg, 64)
	if errLower != nil || errUpper != nil {
		return 0, 0, translation.Translate("❌ Prices must be numbers.")
	}
	if lower >= upper {
		return 0, 0, translation.Translate("❌ Lower price must be less than upper price!")
	}
	return lower, upper, ""
}

// currentPriceText is the best-effort live price for confirmation replies.
// A feed outage degrades the text to N/A, never the command itself.
func currentPriceText(ticker string) string {
	price, ok := quotes.Fetch(ticker)
	if !ok {
		return "N/A"
	}
	return "₹" + helpers.FormatPriceINR(price)
}
