package mapper

import (
	"time"

	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/dto"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

func ToAttachmentItems(attachments []domain.Attachment) []dto.AttachmentItem {
	items := make([]dto.AttachmentItem, 0, len(attachments))
	for _, attachment := range attachments {
		items = append(items, ToAttachmentItem(attachment))
	}
	return items
}

func ToAttachmentItem(attachment domain.Attachment) dto.AttachmentItem {
	return dto.AttachmentItem{
		ID:           attachment.ID,
		TacheID:      attachment.TacheID,
		Filename:     attachment.Filename,
		OriginalName: attachment.OriginalName,
		Mimetype:     attachment.Mimetype,
		Size:         attachment.Size,
		URL:          attachment.URL,
		CreatedAt:    attachment.CreatedAt.Format(time.RFC3339),
	}
}
