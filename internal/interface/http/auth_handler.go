package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/application"
	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-blog-api/pkg/apperror"
	"github.com/oksasatya/go-blog-api/pkg/response"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      entity.User `json:"user"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "Please provide email and password") {
		return
	}
	if req.Email == "" || req.Password == "" {
		response.Message(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if apperror.IsUnauthenticated(err) {
			response.Message(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.MessageErr(c, http.StatusInternalServerError, "Error logging in", err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{Token: res.Token, ExpiresAt: res.ExpiresAt, User: res.User})
}

// Me returns the principal resolved by the auth guard.
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Message(c, http.StatusUnauthorized, "Not authorized, no token provided")
		return
	}
	c.JSON(http.StatusOK, p)
}
