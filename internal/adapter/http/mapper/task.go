package mapper

import (
	"time"

	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/dto"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Libelle:   task.Libelle,
		Status:    string(task.Status),
		UserID:    task.UserID,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.AudioURL != nil {
		value := *task.AudioURL
		item.AudioURL = &value
	}

	if task.DateDebut != nil {
		value := task.DateDebut.Format(time.RFC3339)
		item.DateDebut = &value
	}

	if task.DateFin != nil {
		value := task.DateFin.Format(time.RFC3339)
		item.DateFin = &value
	}

	return item
}
