package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/dto"
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/mapper"
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/middleware"
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/validation"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
	"github.com/SNcodeur2001/projet-final-todo/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidUserPayload, lang))
		return
	}

	input, err := validation.BuildRegisterInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidUserPayload, lang))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusCreated, mapper.ToUserItem(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidUserPayload, lang))
		return
	}

	login, password, err := validation.BuildLoginInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidUserPayload, lang))
		return
	}

	session, err := h.authService.Login(c.Request.Context(), login, password)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.LoginResult{
		Token: session.Token,
		User:  mapper.ToUserItem(session.User),
	})
}

// Verify decodes the bearer token from the Authorization header. The
// route sits outside the auth gate, so both a missing and an invalid
// token answer 400.
func (h *AuthHandler) Verify(c *gin.Context) {
	lang := middleware.GetLang(c)

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgTokenMissing, lang))
		return
	}

	claims, err := h.authService.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgTokenInvalid, lang))
		return
	}

	respondSuccess(c, http.StatusOK, dto.TokenClaimsItem{
		UserID: claims.UserID,
		Login:  claims.Login,
		Role:   string(claims.Role),
	})
}
