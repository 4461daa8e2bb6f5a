package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/taskboard/api/transport"
	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/pkg/httpcontext"
	"github.com/fastygo/taskboard/repository"
	taskUC "github.com/fastygo/taskboard/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Create task
// @Tags tasks
// @Router /api/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	var req transport.CreateTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(stdCtx, ctx, domain.ErrInvalidPayload.WithCause(err), "Error creating task")
		return
	}

	task := repository.NewTask{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.UserID != nil {
		task.UserID = *req.UserID
	}

	created, err := h.uc.CreateTask(stdCtx, task)
	if err != nil {
		h.respondError(stdCtx, ctx, err, "Error creating task")
		return
	}
	h.respondJSON(ctx, http.StatusCreated, created)
}

// @Summary List tasks of a user
// @Tags tasks
// @Router /api/tasks/user/{userId} [get]
func (h *TaskHandler) ListTasksByUser(ctx *fasthttp.RequestCtx) {
	userID, ok := pathID(ctx, "userId")
	if !ok {
		h.respondInvalid(ctx, "Invalid user ID")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasksByUser(stdCtx, userID)
	if err != nil {
		h.respondError(stdCtx, ctx, err, "Error fetching tasks")
		return
	}
	h.respondJSON(ctx, http.StatusOK, tasks)
}

// @Summary Update task completion
// @Tags tasks
// @Router /api/tasks/{id} [patch]
func (h *TaskHandler) UpdateTaskStatus(ctx *fasthttp.RequestCtx) {
	id, ok := pathID(ctx, "id")
	if !ok {
		h.respondInvalid(ctx, "Invalid task ID")
		return
	}

	var req transport.UpdateTaskStatusRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "is_completed must be a boolean")
		return
	}
	completed, ok := req.Completed()
	if !ok {
		h.respondInvalid(ctx, "is_completed must be a boolean")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.UpdateTaskStatus(stdCtx, id, completed); err != nil {
		h.respondError(stdCtx, ctx, err, "Error updating task")
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewMessage("Task updated successfully"))
}

// @Summary Delete task
// @Tags tasks
// @Router /api/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	id, ok := pathID(ctx, "id")
	if !ok {
		h.respondInvalid(ctx, "Invalid task ID")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, id); err != nil {
		h.respondError(stdCtx, ctx, err, "Error deleting task")
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewMessage("Task deleted successfully"))
}
