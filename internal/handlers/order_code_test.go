package handlers

import (
	"strings"
	"testing"
)

func TestGenerateOrderCodeShape(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		code, err := generateOrderCode()
		if err != nil {
			t.Fatalf("generateOrderCode returned error: %v", err)
		}
		if len(code) != orderCodeLength {
			t.Fatalf("expected %d characters, got %q", orderCodeLength, code)
		}
		for _, r := range code {
			if !strings.ContainsRune(orderCodeCharset, r) {
				t.Fatalf("code %q contains character outside charset", code)
			}
		}
		seen[code] = struct{}{}
	}
	if len(seen) < 90 {
		t.Fatalf("expected mostly unique codes, got %d unique out of 100", len(seen))
	}
}

func TestNormalizeOrderCode(t *testing.T) {
	if got := normalizeOrderCode("  abcd2345 "); got != "ABCD2345" {
		t.Fatalf("normalizeOrderCode = %q", got)
	}
}

func TestValidOrderCodeLength(t *testing.T) {
	if !validOrderCode("ABCD2345") {
		t.Fatal("8-character code should be valid")
	}
	for _, code := range []string{"", "ABC", "ABCD23456"} {
		if validOrderCode(code) {
			t.Fatalf("code %q should be invalid", code)
		}
	}
}
