package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fileHeaderFor builds a real multipart.FileHeader carrying the given
// bytes, by round-tripping through a multipart request body.
func fileHeaderFor(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

// pngBytes is a minimal valid PNG signature plus padding, enough for
// content sniffing.
func pngBytes() []byte {
	return append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
}

func TestValidateImage(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateImage(fileHeaderFor(t, "cover.png", pngBytes())))
}

func TestValidateImageRejectsExtension(t *testing.T) {
	t.Parallel()

	err := ValidateImage(fileHeaderFor(t, "cover.pdf", pngBytes()))
	assert.ErrorIs(t, err, ErrUnsupportedExt)
}

func TestValidateImageRejectsMismatchedContent(t *testing.T) {
	t.Parallel()

	err := ValidateImage(fileHeaderFor(t, "cover.png", []byte("<html>not an image</html>")))
	assert.ErrorIs(t, err, ErrContentType)
}

func TestValidateImageRejectsOversize(t *testing.T) {
	t.Parallel()

	header := &multipart.FileHeader{Filename: "huge.png", Size: MaxFileSize + 1}
	assert.ErrorIs(t, ValidateImage(header), ErrFileTooLarge)
}

func TestValidateVideo(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateVideo(&multipart.FileHeader{Filename: "clip.mp4", Size: 1024}))
	assert.ErrorIs(t, ValidateVideo(&multipart.FileHeader{Filename: "clip.exe", Size: 1024}), ErrUnsupportedExt)
	assert.ErrorIs(t, ValidateVideo(&multipart.FileHeader{Filename: "clip.mp4", Size: MaxFileSize + 1}), ErrFileTooLarge)
}

func TestGenerateFilename(t *testing.T) {
	t.Parallel()

	name := GenerateFilename("My Photo.JPG")
	assert.Equal(t, ".jpg", filepath.Ext(name))
	assert.NotContains(t, name, " ")

	other := GenerateFilename("My Photo.JPG")
	assert.NotEqual(t, name, other, "filenames must not collide")

	assert.False(t, strings.ContainsAny(name, "/\\"))
}
