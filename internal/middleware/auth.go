package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/emreglvibecoder/darth-vader-api/internal/constants"
	apierrors "github.com/emreglvibecoder/darth-vader-api/internal/errors"
	"github.com/emreglvibecoder/darth-vader-api/internal/logger"
	"github.com/emreglvibecoder/darth-vader-api/internal/models"
	"github.com/emreglvibecoder/darth-vader-api/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Authenticator resolves request credentials to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// RequireAuth resolves the bearer token, or the session cookie when no
// Authorization header is sent, to a user and stores it in the context.
func RequireAuth(auth Authenticator, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			user *models.User
			err  error
		)
		if header := c.GetHeader("Authorization"); header != "" {
			token, ok := bearerToken(header)
			if !ok {
				apierrors.Unauthorized(c, "Invalid authorization header")
				return
			}
			user, err = auth.Authenticate(ctx, token)
		} else if username := sessionUsername(c); username != "" {
			user, err = auth.UserByUsername(ctx, username)
		} else {
			apierrors.Unauthorized(c, "")
			return
		}

		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				apierrors.Unauthorized(c, "Invalid authentication credentials")
				return
			}
			logger.LogError(log, "failed to authenticate request", err, logrus.Fields{
				"request_id": c.GetString(constants.ContextKeyRequestID),
			})
			apierrors.InternalError(c, "")
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// GetUser retrieves the authenticated user from context
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func sessionUsername(c *gin.Context) string {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return ""
	}
	username, _ := sessions.Default(c).Get(constants.SessionKeyUsername).(string)
	return username
}
