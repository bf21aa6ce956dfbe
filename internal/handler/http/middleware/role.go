package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/stafflog/attendance-backend-go/internal/handler/http/response"
)

const (
	UserTypeAdmin = "admin"
	UserTypeHR    = "HR"
)

// RequireHRAdmin requires the admin or HR user type
func RequireHRAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Access denied")
			return
		}

		userType, ok := claims["user_type"].(string)
		if !ok {
			response.Forbidden(w, "Access denied")
			return
		}

		if userType != UserTypeAdmin && userType != UserTypeHR {
			response.Forbidden(w, "Access denied")
			return
		}

		next.ServeHTTP(w, r)
	})
}
