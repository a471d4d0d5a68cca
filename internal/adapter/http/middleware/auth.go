package middleware

import (
	"log"
	"net/http"
	"os"
	"strings"

	"ofair/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey is the gin context key under which the authenticated consumer id
// is stored for downstream handlers.
const UserIDKey = "user_id"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// Auth validates the Bearer token on every request and resolves the caller's
// user id from the "sub" claim. Tokens are HS256 signed with OFAIR_JWT_SECRET.
// Without a secret the middleware fails closed: an empty HMAC key would
// otherwise validate tokens signed with the empty string.
func Auth() gin.HandlerFunc {
	secret := []byte(os.Getenv("OFAIR_JWT_SECRET"))
	if len(secret) == 0 {
		log.Printf("[auth][middleware] OFAIR_JWT_SECRET is not set, rejecting all requests")
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		}
	}

	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(UserIDKey, sub)
		c.Next()
	}
}

// UserID reads the authenticated user id set by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
