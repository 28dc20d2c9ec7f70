package service

import (
	"context"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

// AttachmentService binds uploaded file metadata to tasks behind the
// task-modify gate and records every mutation against the parent task.
type AttachmentService struct {
	attachments ports.AttachmentRepository
	permissions ports.PermissionChecker
	recorder    ports.ActionRecorder
}

var _ ports.AttachmentService = (*AttachmentService)(nil)

func NewAttachmentService(
	attachments ports.AttachmentRepository,
	permissions ports.PermissionChecker,
	recorder ports.ActionRecorder,
) *AttachmentService {
	return &AttachmentService{
		attachments: attachments,
		permissions: permissions,
		recorder:    recorder,
	}
}

func (s *AttachmentService) Add(ctx context.Context, tacheID uint64, meta domain.FileMeta, userID uint64) (domain.Attachment, error) {
	allowed, err := s.permissions.CanModify(ctx, tacheID, userID)
	if err != nil {
		return domain.Attachment{}, err
	}
	if !allowed {
		return domain.Attachment{}, domain.ErrForbidden
	}

	attachment, err := s.attachments.Create(ctx, domain.Attachment{
		TacheID:      tacheID,
		Filename:     meta.Filename,
		OriginalName: meta.OriginalName,
		Mimetype:     meta.Mimetype,
		Size:         meta.Size,
		URL:          domain.FileURL(meta.Filename, meta.Mimetype),
	})
	if err != nil {
		return domain.Attachment{}, err
	}

	if err := s.recorder.Record(ctx, tacheID, userID, domain.ActionModify); err != nil {
		return domain.Attachment{}, err
	}

	return attachment, nil
}

// List is deliberately not permission-gated: any authenticated session
// may list a task's attachments.
func (s *AttachmentService) List(ctx context.Context, tacheID uint64) ([]domain.Attachment, error) {
	return s.attachments.ListByTask(ctx, tacheID)
}

func (s *AttachmentService) Delete(ctx context.Context, attachmentID, userID uint64) error {
	attachment, err := s.attachments.FindByID(ctx, attachmentID)
	if err != nil {
		return err
	}

	allowed, err := s.permissions.CanModify(ctx, attachment.TacheID, userID)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}

	if err := s.attachments.Delete(ctx, attachmentID); err != nil {
		return err
	}

	return s.recorder.Record(ctx, attachment.TacheID, userID, domain.ActionModify)
}
