package validation

import (
	"strings"

	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/dto"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

const (
	nameMinLen     = 2
	loginMinLen    = 3
	passwordMinLen = 6
)

func BuildRegisterInput(req dto.RegisterRequest) (domain.NewUserInput, error) {
	nom := strings.TrimSpace(req.Nom)
	prenom := strings.TrimSpace(req.Prenom)
	login := strings.TrimSpace(req.Login)

	if len(nom) < nameMinLen || len(prenom) < nameMinLen {
		return domain.NewUserInput{}, domain.ErrInvalidPayload
	}
	if len(login) < loginMinLen || len(req.Password) < passwordMinLen {
		return domain.NewUserInput{}, domain.ErrInvalidPayload
	}

	input := domain.NewUserInput{
		Nom:      nom,
		Prenom:   prenom,
		Login:    login,
		Password: req.Password,
		Role:     domain.RoleUser,
	}

	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !domain.ValidRole(role) {
			return domain.NewUserInput{}, domain.ErrInvalidPayload
		}
		input.Role = role
	}

	return input, nil
}

func BuildLoginInput(req dto.LoginRequest) (string, string, error) {
	login := strings.TrimSpace(req.Login)
	if len(login) < loginMinLen || len(req.Password) < passwordMinLen {
		return "", "", domain.ErrInvalidPayload
	}
	return login, req.Password, nil
}
