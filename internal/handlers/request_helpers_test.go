package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRespondWithErrorAbortsWithBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondWithError(c, http.StatusConflict, "POST /prueba", "el pedido cambió de estado")

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if !c.IsAborted() {
		t.Fatal("context should be aborted after an error response")
	}
	if !strings.Contains(rec.Body.String(), "el pedido cambió de estado") {
		t.Fatalf("body missing the user-facing message: %s", rec.Body.String())
	}
}

func TestHandlePanicRecovers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	func() {
		defer handlePanic(c, "GET /prueba")
		panic("boom")
	}()

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(rec.Body.String(), "error interno del servidor") {
		t.Fatalf("body missing the generic error copy: %s", rec.Body.String())
	}
}
