package domain

import (
	"strings"
	"time"
)

// Attachment is a file reference owned by a task.
type Attachment struct {
	ID           uint64
	TacheID      uint64
	Filename     string
	OriginalName string
	Mimetype     string
	Size         int64
	URL          string
	CreatedAt    time.Time
}

// FileMeta describes an uploaded file after it has been stored on disk.
// Filename is the stored name, not the client-supplied one.
type FileMeta struct {
	Filename     string
	OriginalName string
	Mimetype     string
	Size         int64
}

// FileBucket maps a MIME type to its public bucket. Only image/* and
// audio/* are accepted at the transport boundary; anything else falls
// into the audio bucket.
func FileBucket(mimetype string) string {
	if strings.HasPrefix(mimetype, "image/") {
		return "image"
	}
	return "audio"
}

// FileURL derives the public access path for a stored file.
func FileURL(filename, mimetype string) string {
	return "/uploads/" + FileBucket(mimetype) + "/" + filename
}
