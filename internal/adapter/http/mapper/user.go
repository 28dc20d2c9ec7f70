package mapper

import (
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/dto"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:     user.ID,
		Nom:    user.Nom,
		Prenom: user.Prenom,
		Login:  user.Login,
		Role:   string(user.Role),
	}
}

func ToUserIdentityItem(identity domain.UserIdentity) dto.UserIdentityItem {
	return dto.UserIdentityItem{
		ID:     identity.ID,
		Nom:    identity.Nom,
		Prenom: identity.Prenom,
		Login:  identity.Login,
	}
}
