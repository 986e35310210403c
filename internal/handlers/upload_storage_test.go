package handlers

import "testing"

func TestSafeDeleteUploadIgnoresEmptyPath(t *testing.T) {
	if err := safeDeleteUpload("   "); err != nil {
		t.Fatalf("empty path should be a no-op, got %v", err)
	}
}

func TestSafeDeleteUploadRefusesNonUploadPaths(t *testing.T) {
	for _, p := range []string{
		"main.go",
		"/etc/passwd",
		"../secret.txt",
		"uploads/../go.mod",
		"uploads/products/../../../etc/passwd",
	} {
		if err := safeDeleteUpload(p); err == nil {
			t.Fatalf("path %q should have been refused", p)
		}
	}
}

func TestSafeDeleteUploadMissingFileIsNotAnError(t *testing.T) {
	if err := safeDeleteUpload("uploads/products/no-such-image.jpg"); err != nil {
		t.Fatalf("missing file should be a no-op, got %v", err)
	}
}
