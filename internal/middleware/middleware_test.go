package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
			return func(ctx *fasthttp.RequestCtx) {
				order = append(order, name)
				next(ctx)
			}
		}
	}

	h := Chain(func(*fasthttp.RequestCtx) { order = append(order, "handler") }, mark("outer"), mark("inner"))
	h(&fasthttp.RequestCtx{})

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := AccessLog(zap.New(core))(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusCreated)
	})

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI("/api/users")
	h(&ctx)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "POST", fields["method"])
		assert.Equal(t, "/api/users", fields["path"])
		assert.Equal(t, int64(fasthttp.StatusCreated), fields["status"])
		assert.NotEmpty(t, fields["request_id"])
	}
}

func TestRecover(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := Recover(zap.New(core))(func(*fasthttp.RequestCtx) { panic("boom") })

	var ctx fasthttp.RequestCtx
	assert.NotPanics(t, func() { h(&ctx) })
	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"internal server error","code":"INTERNAL"}`, string(ctx.Response.Body()))
	assert.Equal(t, 1, logs.Len())
}

func TestCORS(t *testing.T) {
	called := false
	h := CORS("")(func(*fasthttp.RequestCtx) { called = true })

	var preflight fasthttp.RequestCtx
	preflight.Request.Header.SetMethod(fasthttp.MethodOptions)
	h(&preflight)

	assert.False(t, called)
	assert.Equal(t, fasthttp.StatusNoContent, preflight.Response.StatusCode())
	assert.Equal(t, "*", string(preflight.Response.Header.Peek("Access-Control-Allow-Origin")))
	assert.Contains(t, string(preflight.Response.Header.Peek("Access-Control-Allow-Methods")), "PATCH")

	var get fasthttp.RequestCtx
	get.Request.Header.SetMethod(fasthttp.MethodGet)
	h(&get)

	assert.True(t, called)
	assert.Equal(t, "*", string(get.Response.Header.Peek("Access-Control-Allow-Origin")))
}
