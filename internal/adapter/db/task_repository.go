package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

const selectTaskColumns = `
SELECT id, libelle, description, status, audio_url, date_debut, date_fin, user_id, created_at, updated_at
FROM taches
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Libelle     string         `db:"libelle"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	AudioURL    sql.NullString `db:"audio_url"`
	DateDebut   sql.NullTime   `db:"date_debut"`
	DateFin     sql.NullTime   `db:"date_fin"`
	UserID      uint64         `db:"user_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, selectTaskColumns+"ORDER BY id"); err != nil {
		return nil, err
	}

	return mapTaskRows(rows), nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (*domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, selectTaskColumns+"WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	task := mapTaskRowToDomainTask(row)
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput, creatorID uint64) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, `
INSERT INTO taches (libelle, description, status, audio_url, date_debut, date_fin, user_id)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		input.Libelle,
		input.Description,
		string(input.Status),
		input.AudioURL,
		input.DateDebut,
		input.DateFin,
		creatorID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	created, err := r.FindByID(ctx, uint64(id))
	if err != nil {
		return domain.Task{}, err
	}
	return *created, nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	assignments := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)

	if input.Libelle != nil {
		assignments = append(assignments, "libelle = ?")
		args = append(args, *input.Libelle)
	}
	if input.Description != nil {
		assignments = append(assignments, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Status != nil {
		assignments = append(assignments, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.AudioURL != nil {
		assignments = append(assignments, "audio_url = ?")
		args = append(args, *input.AudioURL)
	}
	if input.DateDebut != nil {
		assignments = append(assignments, "date_debut = ?")
		args = append(args, *input.DateDebut)
	}
	if input.DateFin != nil {
		assignments = append(assignments, "date_fin = ?")
		args = append(args, *input.DateFin)
	}

	if len(assignments) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE taches SET %s WHERE id = ?", strings.Join(assignments, ", "))
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return domain.Task{}, err
		}
		if affected, err := result.RowsAffected(); err == nil && affected == 0 {
			// Distinguish "no such row" from "no change": re-check existence.
			if _, err := r.FindByID(ctx, id); err != nil {
				return domain.Task{}, err
			}
		}
	}

	updated, err := r.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	return *updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM taches WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) MarkDone(ctx context.Context, id uint64) (domain.Task, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE taches SET status = ? WHERE id = ?", string(domain.TaskStatusDone), id,
	); err != nil {
		return domain.Task{}, err
	}

	task, err := r.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	return *task, nil
}

func (r *TaskRepository) ListCompleted(ctx context.Context, userID uint64, now time.Time) ([]domain.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows, selectTaskColumns+`
WHERE user_id = ? AND status = ? AND date_fin IS NOT NULL AND date_fin <= ?
ORDER BY date_fin DESC`,
		userID, string(domain.TaskStatusDone), now,
	)
	if err != nil {
		return nil, err
	}

	return mapTaskRows(rows), nil
}

func (r *TaskRepository) ListOverdue(ctx context.Context, now time.Time) ([]domain.Task, error) {
	var rows []taskRow
	err := r.db.SelectContext(ctx, &rows, selectTaskColumns+`
WHERE date_fin IS NOT NULL AND date_fin < ? AND status <> ?
ORDER BY id`,
		now, string(domain.TaskStatusDone),
	)
	if err != nil {
		return nil, err
	}

	return mapTaskRows(rows), nil
}

func mapTaskRows(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Libelle:   row.Libelle,
		Status:    domain.TaskStatus(row.Status),
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.AudioURL.Valid {
		value := row.AudioURL.String
		task.AudioURL = &value
	}

	if row.DateDebut.Valid {
		value := row.DateDebut.Time
		task.DateDebut = &value
	}

	if row.DateFin.Valid {
		value := row.DateFin.Time
		task.DateFin = &value
	}

	return task
}
