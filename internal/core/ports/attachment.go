package ports

import (
	"context"
	"mime/multipart"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

type AttachmentRepository interface {
	Create(ctx context.Context, att domain.Attachment) (domain.Attachment, error)
	ListByTask(ctx context.Context, tacheID uint64) ([]domain.Attachment, error)
	// FindByID returns domain.ErrAttachmentNotFound when absent.
	FindByID(ctx context.Context, id uint64) (*domain.Attachment, error)
	Delete(ctx context.Context, id uint64) error
}

type AttachmentService interface {
	Add(ctx context.Context, tacheID uint64, meta domain.FileMeta, userID uint64) (domain.Attachment, error)
	List(ctx context.Context, tacheID uint64) ([]domain.Attachment, error)
	Delete(ctx context.Context, attachmentID, userID uint64) error
}

// UploadStore persists multipart uploads and returns the stored file's
// metadata. Rejects unsupported MIME types and oversized files.
type UploadStore interface {
	Save(file *multipart.FileHeader) (domain.FileMeta, error)
}
