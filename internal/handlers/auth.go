package handlers

import (
	"errors"
	"net/http"

	"github.com/emreglvibecoder/darth-vader-api/internal/constants"
	"github.com/emreglvibecoder/darth-vader-api/internal/dto"
	apierrors "github.com/emreglvibecoder/darth-vader-api/internal/errors"
	"github.com/emreglvibecoder/darth-vader-api/internal/logger"
	"github.com/emreglvibecoder/darth-vader-api/internal/services"
	"github.com/emreglvibecoder/darth-vader-api/internal/validation"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const registeredMessage = "Kullanıcı oluşturuldu"

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	log         logrus.FieldLogger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

// Register creates a user from a JSON body, a form or the query string.
// The password is read from "sifre", falling back to "password".
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username string `json:"username" form:"username" binding:"required,max=50"`
		Sifre    string `json:"sifre" form:"sifre"`
		Password string `json:"password" form:"password"`
	}

	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validation.ToDetails(err))
		return
	}

	password := req.Sifre
	if password == "" {
		password = req.Password
	}
	if password == "" {
		apierrors.BadRequestWithDetails(c, "Invalid request body", map[string]string{"sifre": "is required"})
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Username: req.Username,
		Password: password,
	}); err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: registeredMessage})
}

// Token exchanges form credentials for a bearer token. The username is also
// kept in the session cookie for browser clients.
func (h *AuthHandler) Token(c *gin.Context) {
	type TokenRequest struct {
		Username string `json:"username" form:"username" binding:"required"`
		Password string `json:"password" form:"password" binding:"required"`
	}

	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", validation.ToDetails(err))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	if _, ok := c.Get(sessions.DefaultKey); ok {
		session := sessions.Default(c)
		session.Set(constants.SessionKeyUsername, result.User.Username)
		if err := session.Save(); err != nil {
			logger.LogError(h.log, "failed to save session", err, nil)
			apierrors.InternalError(c, "Failed to save session")
			return
		}
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   constants.TokenTypeBearer,
	})
}

func (h *AuthHandler) respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.AlreadyExists(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrUsernameRequired),
		errors.Is(err, services.ErrUsernameTooLong),
		errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, err.Error())
	default:
		logger.LogError(h.log, "auth request failed", err, logrus.Fields{
			"request_id": c.GetString(constants.ContextKeyRequestID),
		})
		apierrors.InternalError(c, "Internal server error")
	}
}
