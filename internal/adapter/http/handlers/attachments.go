package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/mapper"
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/middleware"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
	"github.com/SNcodeur2001/projet-final-todo/pkg/apierrors"
)

type AttachmentHandler struct {
	attachmentService ports.AttachmentService
	uploads           ports.UploadStore
}

func NewAttachmentHandler(attachmentService ports.AttachmentService, uploads ports.UploadStore) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService, uploads: uploads}
}

// Upload stores the multipart "file" part and binds its metadata to
// the task behind the modify gate.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	taskID, ok := parseIDParam(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, lang, domain.ErrNoFile)
		return
	}

	meta, err := h.uploads.Save(file)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	attachment, err := h.attachmentService.Add(c.Request.Context(), taskID, meta, user.UserID)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusCreated, mapper.ToAttachmentItem(attachment))
}

func (h *AttachmentHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseIDParam(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	attachments, err := h.attachmentService.List(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToAttachmentItems(attachments))
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	attachmentID, ok := parseIDParam(c, "attachmentId", apierrors.MsgInvalidAttachmentID)
	if !ok {
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), attachmentID, user.UserID); err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil)
}
