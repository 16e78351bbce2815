package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/jansou-app/jansou-backend-go/internal/domain/auth"
	"github.com/jansou-app/jansou-backend-go/internal/domain/user"
	"github.com/jansou-app/jansou-backend-go/internal/handler/http/response"
)

// SelfOrAdmin restricts a route mounted under /users/{userID} to the
// user it names. Admins pass regardless of the path parameter.
func SelfOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		if role == string(user.RoleAdmin) {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if chi.URLParam(r, "userID") != userID {
			response.HandleError(w, user.ErrNotResourceOwner)
			return
		}

		next.ServeHTTP(w, r)
	})
}
