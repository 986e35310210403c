package handlers

import (
	"strings"
	"testing"
)

func TestBuildWhatsAppLink(t *testing.T) {
	link := buildWhatsAppLink("+52 33 1234 5678", "Hola! Me gustaría pedir: Rosas Eternas ($699.99)")
	if !strings.HasPrefix(link, "https://wa.me/523312345678?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.ContainsAny(link, " ") {
		t.Fatalf("link must not contain raw spaces: %s", link)
	}
}

func TestBuildWhatsAppLinkStripsNumberFormatting(t *testing.T) {
	link := buildWhatsAppLink("+52 (33) 1234-5678", "hola")
	if !strings.HasPrefix(link, "https://wa.me/523312345678?text=") {
		t.Fatalf("formatting characters leaked into the number: %s", link)
	}
}

func TestBuildWhatsAppLinkEmptyNumber(t *testing.T) {
	if link := buildWhatsAppLink("   ", "hola"); link != "" {
		t.Fatalf("expected empty link without a shop number, got %s", link)
	}
}

func TestProductOrderText(t *testing.T) {
	text := productOrderText("Rosas Eternas", 699.99)
	if !strings.Contains(text, "Rosas Eternas") || !strings.Contains(text, "699.99") {
		t.Fatalf("order text missing product details: %s", text)
	}
}
