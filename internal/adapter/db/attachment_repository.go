package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

const selectAttachmentColumns = `
SELECT id, tache_id, filename, original_name, mimetype, size, url, created_at
FROM tache_attachments
`

type AttachmentRepository struct {
	db *sqlx.DB
}

type attachmentRow struct {
	ID           uint64    `db:"id"`
	TacheID      uint64    `db:"tache_id"`
	Filename     string    `db:"filename"`
	OriginalName string    `db:"original_name"`
	Mimetype     string    `db:"mimetype"`
	Size         int64     `db:"size"`
	URL          string    `db:"url"`
	CreatedAt    time.Time `db:"created_at"`
}

var _ ports.AttachmentRepository = (*AttachmentRepository)(nil)

func NewAttachmentRepository(db *sqlx.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(ctx context.Context, att domain.Attachment) (domain.Attachment, error) {
	result, err := r.db.ExecContext(ctx, `
INSERT INTO tache_attachments (tache_id, filename, original_name, mimetype, size, url)
VALUES (?, ?, ?, ?, ?, ?)`,
		att.TacheID, att.Filename, att.OriginalName, att.Mimetype, att.Size, att.URL,
	)
	if err != nil {
		return domain.Attachment{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Attachment{}, err
	}

	created, err := r.FindByID(ctx, uint64(id))
	if err != nil {
		return domain.Attachment{}, err
	}
	return *created, nil
}

func (r *AttachmentRepository) ListByTask(ctx context.Context, tacheID uint64) ([]domain.Attachment, error) {
	var rows []attachmentRow
	if err := r.db.SelectContext(ctx, &rows, selectAttachmentColumns+"WHERE tache_id = ? ORDER BY id", tacheID); err != nil {
		return nil, err
	}

	attachments := make([]domain.Attachment, 0, len(rows))
	for _, row := range rows {
		attachments = append(attachments, mapAttachmentRow(row))
	}
	return attachments, nil
}

func (r *AttachmentRepository) FindByID(ctx context.Context, id uint64) (*domain.Attachment, error) {
	var row attachmentRow
	err := r.db.GetContext(ctx, &row, selectAttachmentColumns+"WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAttachmentNotFound
	}
	if err != nil {
		return nil, err
	}

	attachment := mapAttachmentRow(row)
	return &attachment, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tache_attachments WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAttachmentNotFound
	}
	return nil
}

func mapAttachmentRow(row attachmentRow) domain.Attachment {
	return domain.Attachment{
		ID:           row.ID,
		TacheID:      row.TacheID,
		Filename:     row.Filename,
		OriginalName: row.OriginalName,
		Mimetype:     row.Mimetype,
		Size:         row.Size,
		URL:          row.URL,
		CreatedAt:    row.CreatedAt,
	}
}
