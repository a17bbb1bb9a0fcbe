package helpers

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeHTML escapes the characters Telegram's HTML parse mode reserves.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// FormatPriceINR renders a rupee amount with two decimals and comma
// thousand separators.
func FormatPriceINR(price float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%.2f", price)
}
