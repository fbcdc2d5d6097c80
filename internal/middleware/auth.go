package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/adops_erp/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates HS256 JWT
// bearer tokens and stores the subject as the authenticated user ID.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			abortUnauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			abortUnauthorized(c, msg)
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			logger.Warn("Invalid token claims or token is not valid")
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		userID := claims.Subject
		ctx := WithUserID(c.Request.Context(), userID)
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": apperrors.CodeUnauthorized, "error": msg})
}
