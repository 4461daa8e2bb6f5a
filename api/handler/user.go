package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/taskboard/api/transport"
	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/pkg/httpcontext"
	userUC "github.com/fastygo/taskboard/usecase/user"
)

type UserHandler struct {
	baseHandler
	uc *userUC.UseCase
}

func NewUserHandler(uc *userUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Create user
// @Tags users
// @Router /api/users [post]
func (h *UserHandler) CreateUser(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	var req transport.CreateUserRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(stdCtx, ctx, domain.ErrInvalidPayload.WithCause(err), "Error creating user")
		return
	}

	user, err := h.uc.CreateUser(stdCtx, req.Name, req.Email)
	if err != nil {
		h.respondError(stdCtx, ctx, err, "Error creating user")
		return
	}
	h.respondJSON(ctx, http.StatusCreated, user)
}

// @Summary Get user
// @Tags users
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(ctx *fasthttp.RequestCtx) {
	id, ok := pathID(ctx, "id")
	if !ok {
		h.respondInvalid(ctx, "Invalid user ID")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.GetUser(stdCtx, id)
	if err != nil {
		h.respondError(stdCtx, ctx, err, "Error fetching user")
		return
	}
	h.respondJSON(ctx, http.StatusOK, user)
}

// @Summary List users
// @Tags users
// @Router /api/users [get]
func (h *UserHandler) ListUsers(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	users, err := h.uc.ListUsers(stdCtx)
	if err != nil {
		h.respondError(stdCtx, ctx, err, "Error fetching users")
		return
	}
	h.respondJSON(ctx, http.StatusOK, users)
}

// @Summary Delete user and their tasks
// @Tags users
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(ctx *fasthttp.RequestCtx) {
	id, ok := pathID(ctx, "id")
	if !ok {
		h.respondInvalid(ctx, "Invalid user ID")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteUser(stdCtx, id); err != nil {
		h.respondError(stdCtx, ctx, err, "Error deleting user")
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewMessage("User deleted successfully"))
}
