package middleware

import "github.com/valyala/fasthttp"

const (
	corsAllowMethods = "GET,POST,PATCH,DELETE,OPTIONS"
	corsAllowHeaders = "Content-Type,X-Request-ID"
)

// CORS allows cross-origin calls from origin ("*" for any) and answers
// preflight requests directly with 204.
func CORS(origin string) Middleware {
	if origin == "" {
		origin = "*"
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
			ctx.Response.Header.Set("Access-Control-Expose-Headers", "X-Request-ID")

			if ctx.IsOptions() {
				ctx.Response.Header.Set("Access-Control-Allow-Methods", corsAllowMethods)
				ctx.Response.Header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				ctx.SetStatusCode(fasthttp.StatusNoContent)
				return
			}
			next(ctx)
		}
	}
}
