package handlers

import (
	"errors"
	"net/http"
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
	"taskhub/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	validation.RegisterValidators()
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Probe(c *gin.Context) {
	probe(c, "Tasks module is working")
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	dueDate, err := parseOptionalDueDate(req.DueDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	input := domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		CategoryID:  req.CategoryID,
	}
	if req.Priority != nil {
		input.Priority = domain.TaskPriority(*req.Priority)
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, input)
	if err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var query dto.TaskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	filter := domain.TaskFilter{
		Search: query.Search,
		Page:   domain.PageQuery{Page: query.Page, Limit: query.Limit},
	}
	if query.Status != "" {
		status := domain.TaskStatus(query.Status)
		filter.Status = &status
	}
	if query.Priority != "" {
		priority := domain.TaskPriority(query.Priority)
		filter.Priority = &priority
	}
	if query.CategoryID != "" {
		categoryID := query.CategoryID
		filter.CategoryID = &categoryID
	}

	list, err := h.taskService.ListTasks(c.Request.Context(), userID, filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.String("user_id", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskListResponse(list))
}

func (h *TaskHandler) GetTaskStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.taskService.GetTaskStats(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to compute task stats", zap.String("user_id", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailTaskStats)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskStatsResponse(stats))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID, userID)
	if err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailListTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	dueDate, err := parseOptionalDueDate(req.DueDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	input := domain.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		CategoryID:  req.CategoryID,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		input.Priority = &priority
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, userID, input)
	if err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, userID); err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailDeleteTask)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) BulkUpdateTasks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.BulkUpdateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	patch := domain.BulkTaskPatch{CategoryID: req.CategoryID}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}

	result, err := h.taskService.BulkUpdateTasks(c.Request.Context(), userID, req.TaskIDs, patch)
	if err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailBulkUpdate)
		return
	}

	c.JSON(http.StatusOK, mapper.ToBulkUpdateTasksResponse(result))
}

func (h *TaskHandler) BulkDeleteTasks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.BulkDeleteTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.taskService.BulkDeleteTasks(c.Request.Context(), userID, req.TaskIDs)
	if err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailBulkDelete)
		return
	}

	c.JSON(http.StatusOK, mapper.ToBulkDeleteTasksResponse(result))
}

func (h *TaskHandler) AddNote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	task, err := h.taskService.AddNote(c.Request.Context(), taskID, userID, req.Content)
	if err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailUpdateNotes)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) RemoveNote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	noteID, ok := pathID(c, "noteId")
	if !ok {
		return
	}

	task, err := h.taskService.RemoveNote(c.Request.Context(), taskID, noteID, userID)
	if err != nil {
		h.respondTaskError(c, err, apierrors.MsgFailUpdateNotes)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error, failMsgKey string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
	case errors.Is(err, domain.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, apierrors.MsgCategoryNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
	default:
		zap.L().Error("task request failed", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, failMsgKey)
	}
}

func parseOptionalDueDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := validation.ParseDueDate(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
