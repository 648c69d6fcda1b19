package access

import (
	"net/http"

	"github.com/crediario/crediario-api/internal/domain/user"
	"github.com/crediario/crediario-api/internal/middleware"
	"github.com/crediario/crediario-api/internal/pkg/response"
)

// RequirePermission returns middleware gating a route set on one operation
func RequirePermission(perm Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := user.Role(middleware.GetRole(r.Context()))
			if !HasPermission(role, perm) {
				response.Forbidden(w, "Permission denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
