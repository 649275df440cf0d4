package routes

import (
	"net/http"
	"sort"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	"TAREAS_BACK-END/internal/dto"
	"TAREAS_BACK-END/internal/handlers"
	"TAREAS_BACK-END/internal/middleware"
	"TAREAS_BACK-END/internal/utils"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	Tasks   *handlers.TaskHandler
	Health  *handlers.HealthHandler
}

// Options toggles optional routes.
type Options struct {
	Debug   bool
	Swagger bool
}

// routeMethods are the methods probed when deciding between 404 and 405.
var routeMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch}

// router records every method+path it mounts so /debug/routes can list them.
type router struct {
	mux    *http.ServeMux
	routes map[string][]string
}

func (rt *router) handle(method, path string, h http.Handler) {
	rt.mux.Handle(method+" "+path, h)
	rt.routes[path] = append(rt.routes[path], method)
}

func (rt *router) handleFunc(method, path string, h http.HandlerFunc) {
	rt.handle(method, path, h)
}

// SetupRoutes configures all application routes on a fresh mux
func SetupRoutes(h Handlers, verifier middleware.TokenVerifier, opts Options) *http.ServeMux {
	rt := &router{mux: http.NewServeMux(), routes: map[string][]string{}}
	protect := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, verifier)
	}

	// Health check routes
	rt.handleFunc(http.MethodGet, "/health/app", h.Health.App)
	rt.handleFunc(http.MethodGet, "/health/db", h.Health.DB)

	// Authentication routes
	rt.handleFunc(http.MethodPost, "/usuarios/registrar", h.Auth.Register)
	rt.handleFunc(http.MethodPost, "/usuarios/login", h.Auth.Login)

	// Profile routes
	rt.handleFunc(http.MethodGet, "/usuarios/me", protect(h.Profile.GetMe))
	rt.handleFunc(http.MethodPut, "/usuarios/me", protect(h.Profile.Update))
	rt.handleFunc(http.MethodPut, "/usuarios/me/password", protect(h.Profile.ChangePassword))

	// Task routes
	rt.handleFunc(http.MethodGet, "/tareas/obtener", protect(h.Tasks.List))
	rt.handleFunc(http.MethodPost, "/tareas/crear", protect(h.Tasks.Create))
	rt.handleFunc(http.MethodGet, "/tareas/tarea/{id}", protect(h.Tasks.Get))
	rt.handleFunc(http.MethodDelete, "/tareas/tarea/{id}", protect(h.Tasks.Delete))
	rt.handleFunc(http.MethodPut, "/tareas/modificar/{id}", protect(h.Tasks.Update))

	if opts.Debug {
		rt.handleFunc(http.MethodGet, "/debug/whoami", protect(h.Auth.WhoAmI))
		rt.handleFunc(http.MethodGet, "/debug/routes", rt.listRoutes)
	}
	if opts.Swagger {
		rt.handle(http.MethodGet, "/swagger/", httpSwagger.WrapHandler)
	}

	// Root route
	rt.mux.HandleFunc("/", rt.fallback)

	return rt.mux
}

// listRoutes returns every mounted path with its methods, sorted by path.
// @Summary Mounted routes (debug)
// @Tags debug
// @Produce json
// @Success 200 {array} dto.RouteInfo
// @Router /debug/routes [get]
func (rt *router) listRoutes(w http.ResponseWriter, r *http.Request) {
	out := make([]dto.RouteInfo, 0, len(rt.routes))
	for path, methods := range rt.routes {
		ms := append([]string(nil), methods...)
		sort.Strings(ms)
		out = append(out, dto.RouteInfo{Rule: path, Methods: strings.Join(ms, ",")})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rule < out[j].Rule })
	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// fallback answers whatever no pattern matched: 405 when the path exists
// under another method, 404 otherwise.
func (rt *router) fallback(w http.ResponseWriter, r *http.Request) {
	if allowed := rt.allowedMethods(r); len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed", "")
		return
	}
	utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "")
}

func (rt *router) allowedMethods(r *http.Request) []string {
	var allowed []string
	for _, m := range routeMethods {
		if m == r.Method {
			continue
		}
		alt := r.Clone(r.Context())
		alt.Method = m
		if _, pattern := rt.mux.Handler(alt); pattern != "" && pattern != "/" {
			allowed = append(allowed, m)
		}
	}
	return allowed
}
