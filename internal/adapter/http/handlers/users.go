package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/mapper"
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/middleware"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToUserItems(users))
}
