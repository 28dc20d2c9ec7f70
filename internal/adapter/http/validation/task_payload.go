package validation

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/dto"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

const (
	libelleMinLen     = 3
	libelleMaxLen     = 100
	descriptionMinLen = 3
	descriptionMaxLen = 255
)

// BuildCreateTaskInput validates the multipart create form: libelle
// 3-100 chars, optional description 3-255, status defaulting to
// EN_ATTENTE, optional RFC 3339 start/end dates.
func BuildCreateTaskInput(req dto.CreateTaskForm) (domain.CreateTaskInput, error) {
	libelle := strings.TrimSpace(req.Libelle)
	if !lengthBetween(libelle, libelleMinLen, libelleMaxLen) {
		return domain.CreateTaskInput{}, domain.ErrInvalidPayload
	}

	input := domain.CreateTaskInput{
		Libelle: libelle,
		Status:  domain.TaskStatusPending,
	}

	if req.Description != nil {
		if !lengthBetween(*req.Description, descriptionMinLen, descriptionMaxLen) {
			return domain.CreateTaskInput{}, domain.ErrInvalidPayload
		}
		value := *req.Description
		input.Description = &value
	}

	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		if !domain.ValidTaskStatus(status) {
			return domain.CreateTaskInput{}, domain.ErrInvalidPayload
		}
		input.Status = status
	}

	var err error
	if input.DateDebut, err = parseOptionalDate(req.DateDebut); err != nil {
		return domain.CreateTaskInput{}, err
	}
	if input.DateFin, err = parseOptionalDate(req.DateFin); err != nil {
		return domain.CreateTaskInput{}, err
	}

	return input, nil
}

// BuildUpdateTaskInput validates the partial JSON update body: every
// field optional, provided fields validated like the create schema,
// omitted fields left untouched. Explicit null is rejected.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	var input domain.UpdateTaskInput

	if hasJSONField(raw, "libelle") {
		if isJSONNull(raw["libelle"]) || req.Libelle == nil {
			return domain.UpdateTaskInput{}, domain.ErrInvalidPayload
		}
		value := strings.TrimSpace(*req.Libelle)
		if !lengthBetween(value, libelleMinLen, libelleMaxLen) {
			return domain.UpdateTaskInput{}, domain.ErrInvalidPayload
		}
		input.Libelle = &value
	}

	if hasJSONField(raw, "description") {
		if isJSONNull(raw["description"]) || req.Description == nil {
			return domain.UpdateTaskInput{}, domain.ErrInvalidPayload
		}
		if !lengthBetween(*req.Description, descriptionMinLen, descriptionMaxLen) {
			return domain.UpdateTaskInput{}, domain.ErrInvalidPayload
		}
		value := *req.Description
		input.Description = &value
	}

	if hasJSONField(raw, "status") {
		if isJSONNull(raw["status"]) || req.Status == nil {
			return domain.UpdateTaskInput{}, domain.ErrInvalidPayload
		}
		status := domain.TaskStatus(*req.Status)
		if !domain.ValidTaskStatus(status) {
			return domain.UpdateTaskInput{}, domain.ErrInvalidPayload
		}
		input.Status = &status
	}

	if hasJSONField(raw, "audioUrl") {
		if isJSONNull(raw["audioUrl"]) || req.AudioURL == nil {
			return domain.UpdateTaskInput{}, domain.ErrInvalidPayload
		}
		value := *req.AudioURL
		input.AudioURL = &value
	}

	var err error
	if hasJSONField(raw, "dateDebut") {
		if isJSONNull(raw["dateDebut"]) {
			return domain.UpdateTaskInput{}, domain.ErrInvalidPayload
		}
		if input.DateDebut, err = parseOptionalDate(req.DateDebut); err != nil {
			return domain.UpdateTaskInput{}, err
		}
	}
	if hasJSONField(raw, "dateFin") {
		if isJSONNull(raw["dateFin"]) {
			return domain.UpdateTaskInput{}, domain.ErrInvalidPayload
		}
		if input.DateFin, err = parseOptionalDate(req.DateFin); err != nil {
			return domain.UpdateTaskInput{}, err
		}
	}

	return input, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, domain.ErrInvalidPayload
	}
	return &parsed, nil
}

func lengthBetween(value string, min, max int) bool {
	length := utf8.RuneCountInString(value)
	return length >= min && length <= max
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
