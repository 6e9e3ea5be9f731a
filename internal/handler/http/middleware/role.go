package middleware

import (
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireElevated requires an HR or manager role. Team-wide and analytics
// reports expose other employees' data, so plain employees never reach them.
func RequireElevated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "HR or manager role required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "HR or manager role required")
			return
		}

		if !employee.Role(roleStr).IsElevated() {
			response.Forbidden(w, "HR or manager role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
