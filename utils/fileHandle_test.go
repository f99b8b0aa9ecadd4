package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadSubdirClassification(t *testing.T) {
	cases := map[string]string{
		"cover.jpg":    "thumbnails",
		"cover.JPEG":   "thumbnails",
		"cover.png":    "thumbnails",
		"cover.webp":   "thumbnails",
		"syllabus.pdf": "documents",
		"bundle.zip":   "documents",
		"lecture.mp4":  "videos",
		"LECTURE.MP4":  "videos",
	}

	for filename, want := range cases {
		got, err := UploadSubdir(filename)
		assert.NoError(t, err, "filename=%q", filename)
		assert.Equal(t, want, got, "filename=%q", filename)
	}
}

func TestUploadSubdirRejectsUnsupported(t *testing.T) {
	for _, filename := range []string{"malware.exe", "notes.txt", "archive.tar.gz", "noext"} {
		_, err := UploadSubdir(filename)
		assert.Error(t, err, "filename=%q", filename)
	}

	_, err := UploadSubdir("tool.exe")
	assert.EqualError(t, err, "unsupported file type: .exe")
}

func TestGenerateTempPassword(t *testing.T) {
	first := GenerateTempPassword()
	second := GenerateTempPassword()

	assert.Len(t, first, 16)
	assert.Len(t, second, 16)
	assert.NotEqual(t, first, second)
}
