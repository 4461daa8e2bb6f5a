package httpcontext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/taskboard/pkg/logger"
)

func TestAttachPropagatesIncomingRequestID(t *testing.T) {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.Set(HeaderRequestID, "abc-123")
	ctx.Request.Header.SetUserAgent("taskboard-client/1.0")

	stdCtx, cancel := NewAdapter(time.Second).Attach(&ctx)
	defer cancel()

	assert.Equal(t, "abc-123", appLogger.RequestID(stdCtx))
	assert.Equal(t, "abc-123", string(ctx.Response.Header.Peek(HeaderRequestID)))
	assert.Equal(t, "taskboard-client/1.0", stdCtx.Value(KeyUserAgent))

	deadline, ok := stdCtx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
}

func TestRequestIDIsGeneratedOnce(t *testing.T) {
	var ctx fasthttp.RequestCtx

	first := RequestID(&ctx)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, RequestID(&ctx))
	assert.Equal(t, first, string(ctx.Response.Header.Peek(HeaderRequestID)))
}

func TestNewAdapterDefaultsTimeout(t *testing.T) {
	assert.Equal(t, 5*time.Second, NewAdapter(0).timeout)
}
