package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"tourcab/globals"
	"tourcab/models"
	"tourcab/utils"
)

// JWT claims
type Claims struct {
	Username string   `json:"username"`
	UserID   string   `json:"userId"`
	Role     []string `json:"role"`
	jwt.RegisteredClaims
}

// Sessions reports whether a user still holds a live session.
type Sessions interface {
	CurrentUser(ctx context.Context, userID string) (models.User, bool, error)
}

// Authenticator checks bearer tokens signed with Secret. When Sessions is
// set, a token whose session slot is gone is rejected too.
type Authenticator struct {
	Secret   []byte
	Sessions Sessions
}

func unauthorized(msg string) error {
	return goerrors.New(msg, goerrors.CategoryAuth).WithTextCode("UNAUTHORIZED")
}

func (a *Authenticator) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		raw := bearer(r)
		if raw == "" && websocket.IsWebSocketUpgrade(r) {
			// Browsers cannot set headers on the upgrade request.
			raw = r.URL.Query().Get("token")
		}
		if raw == "" {
			utils.WriteError(w, unauthorized("missing token"))
			return
		}

		claims, err := a.ValidateJWT(raw)
		if err != nil {
			utils.WriteError(w, err)
			return
		}

		if a.Sessions != nil {
			_, ok, err := a.Sessions.CurrentUser(r.Context(), claims.UserID)
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			if !ok {
				utils.WriteError(w, unauthorized("session ended"))
				return
			}
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
		next(w, r.WithContext(ctx), ps)
	}
}

// ValidateJWT parses an HS256 token without the "Bearer " prefix.
func (a *Authenticator) ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return a.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryAuth, "invalid token").WithTextCode("UNAUTHORIZED")
	}
	if !token.Valid {
		return nil, unauthorized("invalid token")
	}
	return claims, nil
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 8 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
