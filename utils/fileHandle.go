package utils

import (
	"coursehub-backend/config"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadSubdir maps an uploaded filename to its storage subdirectory by
// extension: images become thumbnails, pdf/zip become documents, mp4 becomes
// videos. Anything else is rejected.
func UploadSubdir(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpeg", ".jpg", ".png", ".webp":
		return "thumbnails", nil
	case ".pdf", ".zip":
		return "documents", nil
	case ".mp4":
		return "videos", nil
	}
	return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
}

// SaveUploadedFile stores a course upload under its classified subdirectory
// and returns the public /uploads path
func SaveUploadedFile(file *multipart.FileHeader) (string, error) {
	subdir, err := UploadSubdir(file.Filename)
	if err != nil {
		return "", err
	}
	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	if err := writeUpload(file, filepath.Join(config.AppConfig.UploadDir, subdir), name); err != nil {
		return "", err
	}
	return "/uploads/" + subdir + "/" + name, nil
}

// SaveProfileImage stores an instructor profile image in the uploads root.
// Images only.
func SaveProfileImage(file *multipart.FileHeader) (string, error) {
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".jpeg", ".jpg", ".png", ".gif", ".webp":
	default:
		return "", fmt.Errorf("invalid file type: only JPEG, PNG, GIF and WebP images are allowed")
	}
	name := "instructor-" + uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	if err := writeUpload(file, config.AppConfig.UploadDir, name); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func writeUpload(file *multipart.FileHeader, destDir, name string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	dst, err := os.Create(filepath.Join(destDir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// RemoveFile deletes a previously stored /uploads path from disk. Missing
// files are ignored.
func RemoveFile(publicPath string) {
	if publicPath == "" {
		return
	}
	rel := strings.TrimPrefix(publicPath, "/uploads/")
	if rel == publicPath {
		return // not one of ours
	}
	_ = os.Remove(filepath.Join(config.AppConfig.UploadDir, filepath.FromSlash(rel)))
}
