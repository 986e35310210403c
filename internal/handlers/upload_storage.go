package handlers

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// publicRootDir is the directory gin serves as /public; product images live
// under publicRootDir/uploads/products.
const publicRootDir = "public"

// safeDeleteUpload removes a stored product image by the relative path kept
// on the document. Only paths under uploads/ inside the public root are
// touched. A file that is already gone is not an error: the document is the
// source of truth, the file just mirrors it.
func safeDeleteUpload(imagePath string) error {
	rel := strings.TrimSpace(imagePath)
	if rel == "" {
		return nil
	}

	// collapse any ../ a stored path could smuggle in
	rel = strings.TrimPrefix(path.Clean("/"+strings.TrimPrefix(rel, "/")), "/")
	if !strings.HasPrefix(rel, "uploads/") {
		return fmt.Errorf("not an upload path: %s", imagePath)
	}

	root := filepath.Clean(publicRootDir)
	target := filepath.Clean(filepath.Join(root, filepath.FromSlash(rel)))
	if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return fmt.Errorf("upload path escapes %s: %s", root, imagePath)
	}

	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
