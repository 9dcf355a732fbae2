package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stafftrack/attendance-backend-go/internal/domain/auth"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

// AuthRequired verifies the bearer token decoded by jwtauth.Verifier and
// resolves it to a typed Identity on the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			email, _ := claims["email"].(string)

			roleStr, ok := claims["role"].(string)
			if !ok || !user.ValidRole(user.Role(roleStr)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			identity := Identity{
				UserID: userID,
				Email:  email,
				Role:   user.Role(roleStr),
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}
