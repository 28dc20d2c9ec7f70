package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/dto"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/pkg/apierrors"
)

func respondSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, dto.Success(data))
}

// respondError maps a sentinel error to its status code and translated
// message. Each error kind carries exactly one status; the category is
// never inferred from message text.
func respondError(c *gin.Context, lang string, err error) {
	key, code := classifyError(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(code, apierrors.CreateError(key, lang))
}

func classifyError(err error) (string, int) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return apierrors.MsgTaskNotFound, http.StatusNotFound
	case errors.Is(err, domain.ErrAttachmentNotFound):
		return apierrors.MsgAttachmentNotFound, http.StatusNotFound
	case errors.Is(err, domain.ErrGrantNotFound):
		return apierrors.MsgPermissionNotFound, http.StatusNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return apierrors.MsgUserNotFound, http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return apierrors.MsgAccessForbidden, http.StatusForbidden
	case errors.Is(err, domain.ErrNotCreator):
		return apierrors.MsgNotTaskCreator, http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apierrors.MsgInvalidCredentials, http.StatusBadRequest
	case errors.Is(err, domain.ErrLoginTaken):
		return apierrors.MsgLoginTaken, http.StatusConflict
	case errors.Is(err, domain.ErrNoFile):
		return apierrors.MsgNoFileProvided, http.StatusBadRequest
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return apierrors.MsgUnsupportedFileType, http.StatusBadRequest
	case errors.Is(err, domain.ErrFileTooLarge):
		return apierrors.MsgFileTooLarge, http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidPayload):
		return apierrors.MsgInvalidTaskPayload, http.StatusBadRequest
	default:
		return apierrors.MsgInternalError, http.StatusInternalServerError
	}
}
