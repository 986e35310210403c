package handlers

import (
	"crypto/rand"
	"strings"
)

const orderCodeLength = 8

// Ambiguous characters (0/O, 1/I/L) are excluded so codes stay easy to
// dictate over WhatsApp.
const orderCodeCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// generateOrderCode returns a new 8-character public tracking code.
func generateOrderCode() (string, error) {
	buf := make([]byte, orderCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = orderCodeCharset[int(b)%len(orderCodeCharset)]
	}
	return string(buf), nil
}

// normalizeOrderCode uppercases and trims a customer-typed code.
func normalizeOrderCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func validOrderCode(code string) bool {
	return len(code) == orderCodeLength
}
