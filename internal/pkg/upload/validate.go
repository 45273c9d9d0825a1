package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxFileSize caps a single upload at 10 MB.
const MaxFileSize = 10 * 1024 * 1024

var (
	ErrFileTooLarge   = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedExt = errors.New("unsupported file extension")
	ErrContentType    = errors.New("file content does not match an allowed type")
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".webm": true,
}

// ValidateImage checks size, extension and sniffed content type of an
// uploaded image.
func ValidateImage(fileHeader *multipart.FileHeader) error {
	return validate(fileHeader, imageExtensions, "image/")
}

// ValidateVideo checks size and extension of an uploaded video file.
func ValidateVideo(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !videoExtensions[ext] {
		return ErrUnsupportedExt
	}
	return nil
}

func validate(fileHeader *multipart.FileHeader, allowed map[string]bool, typePrefix string) error {
	if fileHeader.Size > MaxFileSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowed[ext] {
		return ErrUnsupportedExt
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	// http.DetectContentType only looks at the first 512 bytes.
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && n == 0 {
		return err
	}

	contentType := http.DetectContentType(buf[:n])
	if !strings.HasPrefix(contentType, typePrefix) {
		return ErrContentType
	}
	return nil
}

// GenerateFilename builds a collision free filename keeping the
// original extension.
func GenerateFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s%s", uuid.New().String(), ext)
}
