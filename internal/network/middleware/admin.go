package middleware

import (
	"net/http"

	"github.com/storecore/loyalty/internal/helpers"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
)

// RequireAdmin — middleware доступа к административным маршрутам.
// Роль берётся из claims уже проверенного JWT токена.
func RequireAdmin(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := helpers.GetRole(r.Context())
		if err != nil || role != models.RoleAdmin {
			logger.Warn("Admin access denied", "role", role)
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.ServeHTTP(w, r)
	})
}
