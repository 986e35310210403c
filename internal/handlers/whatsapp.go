package handlers

import (
	"fmt"
	"net/url"
	"strings"
)

// buildWhatsAppLink returns a wa.me URL opening a chat with the shop,
// prefilled with the order text. wa.me only accepts bare digits, so the
// configured number is stripped of +, spaces and any other formatting.
// Returns "" when no shop number is configured.
func buildWhatsAppLink(shopNumber, text string) string {
	number := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, shopNumber)
	if number == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

// productOrderText is the prefilled message for ordering a catalog product.
func productOrderText(name string, price float64) string {
	return fmt.Sprintf("Hola! Me gustaría pedir: %s ($%.2f)", name, price)
}
