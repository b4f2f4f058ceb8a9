package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/portfolio-studio/internal/pipeline"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	server      *Server
}

// NewAuthHandler creates a new AuthHandler bound to the server's services.
func NewAuthHandler(s *Server) *AuthHandler {
	return &AuthHandler{
		userService: s.userService,
		jwtService:  s.jwtService,
		server:      s,
	}
}

// Register handles user registration requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	s := h.server

	var req types.CreateUserRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &pipeline.ValidationError{Message: validationMessage(err)})
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, types.LoginResponse{User: user, Token: token})
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	s := h.server

	var req types.LoginRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &pipeline.ValidationError{Message: validationMessage(err)})
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.LoginResponse{User: user, Token: token})
}

// validationMessage renders the first field failure from validator errors.
func validationMessage(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return "invalid field " + ve.Field() + ": " + ve.Tag()
	}
	return "invalid request"
}
