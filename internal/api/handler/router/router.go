package router

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/chocolate-forecast-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Middlewares aplicados apenas a esta rota
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// UnmatchedRoute identifica requisições que não casaram com nenhuma rota registrada
const UnmatchedRoute = "unmatched"

type matchedRouteKey struct{}

type matchedRoute struct {
	pattern string
}

// TrackRoute prepara a requisição para que o router informe o padrão da rota atendida.
// A função retornada devolve o padrão após o ServeHTTP, ou UnmatchedRoute.
func TrackRoute(req *http.Request) (*http.Request, func() string) {
	matched := &matchedRoute{pattern: UnmatchedRoute}
	ctx := context.WithValue(req.Context(), matchedRouteKey{}, matched)

	return req.WithContext(ctx), func() string { return matched.pattern }
}

// New cria o router; rotas e métodos desconhecidos respondem no formato de erro da API
func New(configs ...ConfigRouter) *Router {
	rt := httprouter.New()
	rt.NotFound = http.HandlerFunc(notFound)
	rt.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)

	router := &Router{router: rt}
	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas com seus middlewares específicos
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, tagRoute(route.Path, chain(route.Handler, route.Middlewares)))
	}
}

func tagRoute(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if matched, ok := req.Context().Value(matchedRouteKey{}).(*matchedRoute); ok {
			matched.pattern = pattern
		}
		next.ServeHTTP(w, req)
	})
}

// chain aplica os middlewares de forma que o primeiro da lista seja o mais externo
func chain(handler http.Handler, middlewares []func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

func notFound(w http.ResponseWriter, r *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrNotFound, "Route not found", r.URL.Path)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Method not allowed", r.Method)
}
