package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
=======================
  INPUT STRUCT
=======================
*/

type multipartProductInput struct {
	Name           string
	NameSet        bool
	Description    string
	DescriptionSet bool
	Price          float64
	PriceSet       bool
	Category       string
	CategorySet    bool
	Available      bool
	AvailableSet   bool
	ImagePath      string
	ImageSet       bool
}

/*
=======================
  PARSER
=======================
*/

func parseMultipartProductRequest(c *gin.Context) (multipartProductInput, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		return multipartProductInput{}, err
	}

	input := multipartProductInput{}

	if value, ok := c.GetPostForm("name"); ok {
		input.Name = strings.TrimSpace(value)
		input.NameSet = true
	}

	if value, ok := c.GetPostForm("description"); ok {
		input.Description = strings.TrimSpace(value)
		input.DescriptionSet = true
	}

	if value, ok := c.GetPostForm("category"); ok {
		input.Category = strings.TrimSpace(value)
		input.CategorySet = true
	}

	if value, ok := c.GetPostForm("price"); ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return multipartProductInput{}, err
		}
		input.Price = parsed
		input.PriceSet = true
	}

	if value, ok := c.GetPostForm("available"); ok {
		parsed, err := parseBoolValue(value)
		if err != nil {
			return multipartProductInput{}, err
		}
		input.Available = parsed
		input.AvailableSet = true
	}

	file, err := c.FormFile("image")
	if err == nil {
		imagePath, err := saveImage(file)
		if err != nil {
			return multipartProductInput{}, err
		}
		input.ImagePath = imagePath
		input.ImageSet = true
	} else {
		// tolerant check, the error differs between gin versions
		if !errors.Is(err, http.ErrMissingFile) &&
			!strings.Contains(err.Error(), "no such file") {
			return multipartProductInput{}, err
		}
	}

	return input, nil
}

/*
=======================
  IMAGE SAVE
=======================
*/

func saveImage(file *multipart.FileHeader) (string, error) {
	extension := strings.ToLower(filepath.Ext(file.Filename))
	if extension == "" {
		return "", fmt.Errorf("image file extension is required")
	}
	allowedExtensions := map[string]struct{}{
		".jpg":  {},
		".jpeg": {},
		".png":  {},
		".webp": {},
	}
	if _, ok := allowedExtensions[extension]; !ok {
		return "", fmt.Errorf("unsupported image type: %s", extension)
	}
	const maxImageSize = 5 << 20
	if file.Size > maxImageSize {
		return "", fmt.Errorf("image file too large (max 5MB)")
	}

	filename := primitive.NewObjectID().Hex() + extension

	dir := filepath.Join(publicRootDir, "uploads", "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("[UPLOAD] [ERROR] failed to create directory %s: %v", dir, err)
		return "", err
	}

	fullPath := filepath.Join(dir, filename)

	out, err := os.Create(fullPath)
	if err != nil {
		log.Printf("[UPLOAD] [ERROR] failed to create file %s: %v", fullPath, err)
		return "", err
	}
	defer out.Close()

	in, err := file.Open()
	if err != nil {
		log.Printf("[UPLOAD] [ERROR] failed to open upload %s: %v", file.Filename, err)
		return "", err
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		log.Printf("[UPLOAD] [ERROR] failed to save file %s: %v", fullPath, err)
		return "", err
	}

	// path stored on the product document
	return filepath.ToSlash(filepath.Join("uploads", "products", filename)), nil
}

/*
=======================
  HELPERS
=======================
*/

func parseBoolValue(value string) (bool, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "on" {
		return true, nil
	}
	return strconv.ParseBool(value)
}

func respondMultipartError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
