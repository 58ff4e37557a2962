package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/verifica-mx/campaign-verifier/internal/config"
	"github.com/verifica-mx/campaign-verifier/internal/utils"
)

type contextKey string

const (
	UserIDKey   contextKey = "userID"
	UsernameKey contextKey = "username"
)

var jwtSecret = config.Envs.JWTSecret

// Session is the identity collaborator's view of the current request: an
// opaque owner reference plus a display name.
type Session struct {
	UserID   string
	Username string
}

// SessionFromRequest reads the session cookie and validates its JWT. A
// missing or invalid cookie means no session, not an error.
func SessionFromRequest(r *http.Request) (*Session, bool) {
	tokenStr, err := r.Cookie("token")
	if err != nil {
		return nil, false
	}

	token, err := jwt.Parse(tokenStr.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return nil, false
	}
	username, _ := claims["username"].(string)

	return &Session{UserID: userID, Username: username}, true
}

// AuthMiddleware gates a subtree behind a valid session and stashes the
// session owner in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		session, ok := SessionFromRequest(r)
		if !ok {
			utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
				Success: false,
				Message: "Unauthorized",
			})
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, session.UserID)
		ctx = context.WithValue(ctx, UsernameKey, session.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
