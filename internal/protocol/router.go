package protocol

import (
	"context"
)

// HandlerFunc serves one request and returns its encoded reply.
type HandlerFunc func(ctx context.Context, args []string) string

// Middleware wraps a HandlerFunc.
type Middleware func(HandlerFunc) HandlerFunc

// Router dispatches requests by exact, case-sensitive command name.
type Router struct {
	handlers    map[string]HandlerFunc
	middlewares []Middleware
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]HandlerFunc)}
}

// Use appends middlewares applied to every request, unknown commands included.
// The first middleware is the outermost.
func (r *Router) Use(mws ...Middleware) {
	r.middlewares = append(r.middlewares, mws...)
}

// Handle registers h for command, wrapped in the given route middlewares.
func (r *Router) Handle(command string, h HandlerFunc, mws ...Middleware) {
	r.handlers[command] = chain(h, mws)
}

// Serve parses line, runs it through the middleware chain and returns the reply.
func (r *Router) Serve(ctx context.Context, line string) string {
	req, err := Parse(line)
	if err != nil {
		return Error(MsgInvalidCommand)
	}

	h := chain(r.dispatch, r.middlewares)
	return h(WithRequest(ctx, req), req.Args)
}

func (r *Router) dispatch(ctx context.Context, args []string) string {
	req, _ := RequestFromContext(ctx)

	h, ok := r.handlers[req.Command]
	if !ok {
		return Error(MsgInvalidCommand)
	}
	return h(ctx, args)
}

func chain(h HandlerFunc, mws []Middleware) HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
