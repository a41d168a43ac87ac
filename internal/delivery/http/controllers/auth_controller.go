package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// SignUpRequest is the request body for POST /auth/signup
type SignUpRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // "user" or "admin" (defaults to "user")
}

// Validate implements Validator.
func (s SignUpRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(s.Username) == "" {
		errs = append(errs, "username is required")
	}
	if s.Password == "" {
		errs = append(errs, "password is required")
	}
	if s.Role != "" && s.Role != domain.RoleUser && s.Role != domain.RoleAdmin {
		errs = append(errs, "role must be \"user\" or \"admin\"")
	}
	return errs
}

// LoginRequest is the request body for POST /auth/login. Role is part of the
// credential tuple; all three fields must match the stored user.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Username) == "" {
		errs = append(errs, "username is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	if l.Role != domain.RoleUser && l.Role != domain.RoleAdmin {
		errs = append(errs, "role must be \"user\" or \"admin\"")
	}
	return errs
}

type AuthController struct {
	Logger   *slog.Logger
	Service  domain.UserService
	Sessions domain.SessionManager
}

func NewAuthController(logger *slog.Logger, svc domain.UserService, sessions domain.SessionManager) *AuthController {
	return &AuthController{
		Logger:   logger,
		Service:  svc,
		Sessions: sessions,
	}
}

// SignUp godoc
// @Summary Sign up a new user
// @Description Create a new user with name, username, password, and role. The username must be unique. The new user is logged in immediately.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Sign-up data"
// @Success 201 {object} helpers.APIResponse "data contains the established session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	user, err := c.Service.SignUp(r.Context(), req.Name, req.Username, req.Password, role)
	if err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, domain.Session{ID: user.ID, Username: user.Username, Role: user.Role})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with username, password, and role. All three must match; the established session replaces any prior one.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains the session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, err := c.Service.Login(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, sess)
}

// Logout godoc
// @Summary Log out
// @Description Destroy the current session.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Logout(r.Context()); err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

// GetSession godoc
// @Summary Current session
// @Description Return the current session, or null when nobody is logged in.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the session or null"
// @Router /auth/session [get]
func (c *AuthController) GetSession(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, c.Sessions.Get(r.Context()))
}
