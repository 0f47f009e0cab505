package middleware

import (
	"net/http"
	"strings"

	"github.com/khasmak/api/models"
)

// Navigation route map. The user and admin areas are guarded; the owner
// dashboard is reached through its own role-gated API and has never been in
// the guard's route lists.
var (
	userAreaPrefixes  = []string{"/deductions", "/summary", "/history"}
	adminAreaPrefixes = []string{"/admin"}
)

// GuardDecision is the outcome of the navigation guard: either the request
// may proceed, or the client must be sent to RedirectTo.
type GuardDecision struct {
	Allow      bool
	RedirectTo string
}

// EvaluateGuard is the pure page-navigation rule set, a function of
// (path, authenticated, role) only:
//
//  1. unauthenticated visitors are sent from any protected area to the login page
//  2. authenticated visitors on the login page go to their role's home
//     (an account without a usable role stays put)
//  3. a user on the admin area goes back to the user home
//  4. an admin on the user area goes back to the admin home
func EvaluateGuard(path string, authenticated bool, role models.Role) GuardDecision {
	isUserArea := hasAnyPrefix(path, userAreaPrefixes)
	isAdminArea := hasAnyPrefix(path, adminAreaPrefixes)
	isLoginPage := path == "/"

	if !authenticated && (isUserArea || isAdminArea) {
		return GuardDecision{RedirectTo: "/"}
	}

	if authenticated && isLoginPage {
		switch role {
		case models.RoleAdmin:
			return GuardDecision{RedirectTo: "/admin"}
		case models.RoleUser:
			return GuardDecision{RedirectTo: "/deductions"}
		}
		// no usable role: stay on the login page
	}

	if authenticated && role == models.RoleUser && isAdminArea {
		return GuardDecision{RedirectTo: "/deductions"}
	}
	if authenticated && role == models.RoleAdmin && isUserArea {
		return GuardDecision{RedirectTo: "/admin"}
	}

	return GuardDecision{Allow: true}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// NavigationGuard applies EvaluateGuard in front of the static front end.
// Session state comes from the token cookie when present; a bad or expired
// token counts as unauthenticated.
func NavigationGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authenticated := false
		var role models.Role
		if c, err := r.Cookie("token"); err == nil {
			if claims, err := ParseToken(c.Value); err == nil {
				authenticated = true
				role = claims.Role
			}
		}

		d := EvaluateGuard(r.URL.Path, authenticated, role)
		if !d.Allow {
			http.Redirect(w, r, d.RedirectTo, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
