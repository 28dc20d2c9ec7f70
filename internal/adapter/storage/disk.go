// Package storage persists uploaded files on the local disk, bucketed
// by MIME type under {dir}/image and {dir}/audio.
package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

type DiskStore struct {
	dir     string
	maxSize int64
}

var _ ports.UploadStore = (*DiskStore)(nil)

// NewDiskStore creates the image and audio buckets under dir.
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	for _, bucket := range []string{"image", "audio"} {
		if err := os.MkdirAll(filepath.Join(dir, bucket), 0o755); err != nil {
			return nil, err
		}
	}
	return &DiskStore{dir: dir, maxSize: maxSize}, nil
}

// Save writes the upload into its bucket under a unique stored name and
// returns the stored metadata. Only image/* and audio/* are accepted.
func (s *DiskStore) Save(file *multipart.FileHeader) (domain.FileMeta, error) {
	mimetype := file.Header.Get("Content-Type")
	if !strings.HasPrefix(mimetype, "image/") && !strings.HasPrefix(mimetype, "audio/") {
		return domain.FileMeta{}, domain.ErrUnsupportedFileType
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return domain.FileMeta{}, domain.ErrFileTooLarge
	}

	id, err := uuid.NewV4()
	if err != nil {
		return domain.FileMeta{}, err
	}
	stored := id.String() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return domain.FileMeta{}, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, domain.FileBucket(mimetype), stored))
	if err != nil {
		return domain.FileMeta{}, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return domain.FileMeta{}, err
	}

	return domain.FileMeta{
		Filename:     stored,
		OriginalName: file.Filename,
		Mimetype:     mimetype,
		Size:         file.Size,
	}, nil
}
