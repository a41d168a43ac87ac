package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventboard/internal/delivery/http/controllers"
	h "eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes. The
// auth guards wrap the management and dashboard routes; everything else is
// public.
func NewRouter(
	sessions domain.SessionManager,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	preferenceController *controllers.PreferenceController,
	dashboardController *controllers.DashboardController,
) *http.ServeMux {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(sessions)
	requireAdmin := middleware.RequireAdmin(sessions)

	mux.HandleFunc("GET /{$}", home)
	mux.HandleFunc("GET /login", loginPrompt)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("POST /auth/logout", requireAuth(authController.Logout))
	mux.HandleFunc("GET /auth/session", authController.GetSession)

	// Events
	mux.HandleFunc("GET /events", eventController.List)
	mux.HandleFunc("GET /events/{id}", eventController.Get)
	mux.HandleFunc("POST /events", requireAuth(eventController.Create))
	mux.HandleFunc("PUT /events/{id}", requireAuth(eventController.Update))
	mux.HandleFunc("DELETE /events/{id}", requireAuth(eventController.Delete))
	mux.HandleFunc("POST /events/{id}/approve", requireAdmin(eventController.Approve))
	mux.HandleFunc("GET /manage/events", requireAuth(eventController.Manage))

	// Preferences
	mux.HandleFunc("GET /events/{id}/preferences", preferenceController.Get)
	mux.HandleFunc("PUT /events/{id}/preferences", preferenceController.Set)

	// Dashboards
	mux.HandleFunc("GET /dashboard/user", requireAuth(dashboardController.User))
	mux.HandleFunc("GET /dashboard/admin", requireAdmin(dashboardController.Admin))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Everything else
	mux.HandleFunc("/", notFound)

	return mux
}

func home(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{
		"service": "eventboard",
		"events":  "/events",
		"docs":    "/swagger/index.html",
	})
}

// loginPrompt is the landing spot for guard redirects.
func loginPrompt(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{
		"message": "log in via POST /auth/login or sign up via POST /auth/signup",
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "no such page")
}
