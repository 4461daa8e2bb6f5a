package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/taskboard/api/transport"
	"github.com/fastygo/taskboard/internal/infrastructure/monitor"
	"github.com/fastygo/taskboard/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
	now     func() time.Time
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
		now:         time.Now,
	}
}

// Check always answers 200 while the process serves requests; storage
// reachability is reported alongside.
//
// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	resp := transport.HealthResponse{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
	}
	if h.monitor != nil {
		status := h.monitor.GetStatus()
		resp.Database = "down"
		if status.Database {
			resp.Database = "up"
		}
		if !status.LastCheck.IsZero() {
			resp.CheckedAt = status.LastCheck.Format(time.RFC3339Nano)
		}
	}
	h.respondJSON(ctx, http.StatusOK, resp)
}
