package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func multipartContext(t *testing.T, fields map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		_ = writer.WriteField(key, value)
	}
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/admin/api/products", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestParseMultipartProductRequest_TracksSetFields(t *testing.T) {
	c := multipartContext(t, map[string]string{
		"name":  "  Rosas Eternas  ",
		"price": "699.99",
	})

	parsed, err := parseMultipartProductRequest(c)
	if err != nil {
		t.Fatalf("parseMultipartProductRequest returned error: %v", err)
	}
	if !parsed.NameSet || parsed.Name != "Rosas Eternas" {
		t.Fatalf("expected trimmed name, got %+v", parsed)
	}
	if !parsed.PriceSet || parsed.Price != 699.99 {
		t.Fatalf("expected price=699.99, got %+v", parsed)
	}
	if parsed.DescriptionSet || parsed.CategorySet || parsed.AvailableSet || parsed.ImageSet {
		t.Fatalf("absent fields must not be marked set: %+v", parsed)
	}
}

func TestParseMultipartProductRequest_CheckboxAvailable(t *testing.T) {
	c := multipartContext(t, map[string]string{"available": "on"})

	parsed, err := parseMultipartProductRequest(c)
	if err != nil {
		t.Fatalf("parseMultipartProductRequest returned error: %v", err)
	}
	if !parsed.AvailableSet || !parsed.Available {
		t.Fatalf("expected available=true from checkbox value, got %+v", parsed)
	}
}

func TestParseMultipartProductRequest_RejectsBadPrice(t *testing.T) {
	c := multipartContext(t, map[string]string{"price": "seiscientos"})

	if _, err := parseMultipartProductRequest(c); err == nil {
		t.Fatal("expected a parse error for a non-numeric price")
	}
}

func TestParseBoolValue(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{" ON ", true, false},
		{"true", true, false},
		{"false", false, false},
		{"yes", false, true},
	}
	for _, tt := range tests {
		got, err := parseBoolValue(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parseBoolValue(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("parseBoolValue(%q) = %v, %v", tt.in, got, err)
		}
	}
}
