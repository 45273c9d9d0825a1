package controllers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tuguldure/newswire/app/models"
	"github.com/tuguldure/newswire/internal/pkg/env"
	"github.com/tuguldure/newswire/internal/pkg/upload"
)

// UploadController handles media uploads for the editor.
type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

func uploadDir(kind string) string {
	return filepath.Join(env.GetEnv("UPLOAD_DIR", "./public/uploads"), kind)
}

// publicURL builds the URL a stored file is served back under,
// absolute when PUBLIC_DOMAIN is configured.
func publicURL(kind, filename string) string {
	return env.GetEnv("PUBLIC_DOMAIN", "") + "/uploads/" + kind + "/" + filename
}

// Image accepts a multipart image upload and stores it under a
// generated filename.
func (uc *UploadController) Image(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return respondError(c, models.NewValidationError("An image file is required"))
	}

	if err := upload.ValidateImage(fileHeader); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	dir := uploadDir("images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return respondError(c, err)
	}

	filename := upload.GenerateFilename(fileHeader.Filename)
	if err := c.SaveFile(fileHeader, filepath.Join(dir, filename)); err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusCreated, fiber.Map{
		"filename": filename,
		"url":      publicURL("images", filename),
	})
}

// Video accepts a multipart video upload.
func (uc *UploadController) Video(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		return respondError(c, models.NewValidationError("A video file is required"))
	}

	if err := upload.ValidateVideo(fileHeader); err != nil {
		return respondError(c, models.NewValidationError(err.Error()))
	}

	dir := uploadDir("videos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return respondError(c, err)
	}

	filename := upload.GenerateFilename(fileHeader.Filename)
	if err := c.SaveFile(fileHeader, filepath.Join(dir, filename)); err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.StatusCreated, fiber.Map{
		"filename": filename,
		"url":      publicURL("videos", filename),
	})
}

// Delete removes an uploaded file by name. The name must be bare, with
// no path components.
func (uc *UploadController) Delete(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if filename == "" || strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		return respondError(c, models.NewValidationError("Invalid filename"))
	}

	for _, dir := range []string{uploadDir("images"), uploadDir("videos")} {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			if err := os.Remove(path); err != nil {
				return respondError(c, err)
			}
			return respondMessage(c, fiber.StatusOK, "File deleted")
		}
	}

	return respondError(c, models.NewNotFoundError("File not found"))
}
