package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-question-bank/internal/application"
	"github.com/oksasatya/go-question-bank/pkg/response"
)

type AuthHandler struct {
	Svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

type credentialsRequest struct {
	Email string    `json:"email"`
	Pin   textValue `json:"pin"`
}

// Register POST /register {email, pin}
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and PIN are required")
		return
	}

	err := h.Svc.Register(c.Request.Context(), req.Email, string(req.Pin))
	switch {
	case err == nil:
		response.Message(c, http.StatusOK, "User registered successfully")
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, "Email and PIN are required")
	case errors.Is(err, application.ErrDuplicateEmail):
		response.Error(c, http.StatusBadRequest, "Email already registered")
	default:
		response.Error(c, http.StatusInternalServerError, "Database error: "+err.Error())
	}
}

// Login POST /login {email, pin}. Issues no token or cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid email or PIN")
		return
	}

	err := h.Svc.Login(c.Request.Context(), req.Email, string(req.Pin))
	switch {
	case err == nil:
		response.Message(c, http.StatusOK, "Login successful")
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusBadRequest, "Invalid email or PIN")
	default:
		response.Error(c, http.StatusInternalServerError, "Database error")
	}
}
