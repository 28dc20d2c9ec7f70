package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/dto"
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/mapper"
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/middleware"
	"github.com/SNcodeur2001/projet-final-todo/internal/adapter/http/validation"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/domain"
	"github.com/SNcodeur2001/projet-final-todo/internal/core/ports"
	"github.com/SNcodeur2001/projet-final-todo/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
	uploads     ports.UploadStore
}

func NewTaskHandler(taskService ports.TaskService, uploads ports.UploadStore) *TaskHandler {
	return &TaskHandler{taskService: taskService, uploads: uploads}
}

func (h *TaskHandler) List(c *gin.Context) {
	lang := middleware.GetLang(c)

	tasks, err := h.taskService.List(c.Request.Context())
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) Get(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	taskID, ok := parseIDParam(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), taskID, user.UserID)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToTaskItem(task))
}

// Create accepts a multipart form; an optional "audio" file part is
// stored and exposed through an absolute URL on the created task.
func (h *TaskHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	var req dto.CreateTaskForm
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	if file, err := c.FormFile("audio"); err == nil {
		meta, err := h.uploads.Save(file)
		if err != nil {
			respondError(c, lang, err)
			return
		}
		url := requestScheme(c) + "://" + c.Request.Host + domain.FileURL(meta.Filename, meta.Mimetype)
		input.AudioURL = &url
	}

	task, err := h.taskService.Create(c.Request.Context(), input, user.UserID)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) Update(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	taskID, ok := parseIDParam(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	var req dto.UpdateTaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), taskID, input, user.UserID)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	taskID, ok := parseIDParam(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), taskID, user.UserID); err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil)
}

func (h *TaskHandler) MarkComplete(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	taskID, ok := parseIDParam(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	task, err := h.taskService.MarkComplete(c.Request.Context(), taskID, user.UserID)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ListCompleted(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	tasks, err := h.taskService.ListCompleted(c.Request.Context(), user.UserID)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) AssignPermission(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	taskID, ok := parseIDParam(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.AssignPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidPermissionPayload, lang))
		return
	}

	granteeID, tier, err := validation.BuildAssignPermissionInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidPermissionPayload, lang))
		return
	}

	grant, err := h.taskService.AssignPermission(c.Request.Context(), taskID, granteeID, tier, user.UserID)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToGrantItem(grant))
}

func (h *TaskHandler) ListPermissions(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	taskID, ok := parseIDParam(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	grants, err := h.taskService.ListPermissions(c.Request.Context(), taskID, user.UserID)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToGrantItems(grants))
}

func (h *TaskHandler) RemovePermission(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	taskID, ok := parseIDParam(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}
	granteeID, ok := parseIDParam(c, "userId", apierrors.MsgInvalidUserID)
	if !ok {
		return
	}

	if err := h.taskService.RemovePermission(c.Request.Context(), taskID, granteeID, user.UserID); err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil)
}

func (h *TaskHandler) History(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.CurrentUser(c)

	taskID, ok := parseIDParam(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	entries, err := h.taskService.History(c.Request.Context(), taskID, user.UserID)
	if err != nil {
		respondError(c, lang, err)
		return
	}

	respondSuccess(c, http.StatusOK, mapper.ToActionEntryItems(entries))
}

func parseIDParam(c *gin.Context, name, msgKey string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(msgKey, middleware.GetLang(c)))
		return 0, false
	}
	return id, true
}

func requestScheme(c *gin.Context) string {
	if c.Request.TLS != nil {
		return "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	return "http"
}
