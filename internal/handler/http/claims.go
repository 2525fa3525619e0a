package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftline-hr/workforce-backend-go/internal/domain/employee"
)

// employeeIDFromClaims pulls the authenticated employee identity out of
// the verified JWT. Handlers trust this over anything in the request body.
func employeeIDFromClaims(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", false
	}
	return employeeID, true
}

// isAdminFromClaims reports whether the verified JWT carries the admin role.
// Admins may act on records they do not own.
func isAdminFromClaims(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}

	role, ok := claims["role"].(string)
	return ok && role == string(employee.RoleAdmin)
}
