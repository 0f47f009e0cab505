// handlers/auth.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/khasmak/api/config"
	"github.com/khasmak/api/middleware"
	"github.com/khasmak/api/models"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token               string      `json:"token"`
	Email               string      `json:"email"`
	Role                models.Role `json:"role"`
	NeedsPasswordChange bool        `json:"needsPasswordChange"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	check, err := ValidateUser(config.DB, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !check.Valid {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := middleware.GenerateToken(req.Email, check.Role)
	if err != nil {
		http.Error(w, "couldn't create token", http.StatusInternalServerError)
		return
	}

	out := loginResp{
		Token:               token,
		Email:               req.Email,
		Role:                check.Role,
		NeedsPasswordChange: check.NeedsPasswordChange,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

type changePasswordReq struct {
	NewPassword string `json:"newPassword"`
}

// ChangePassword overwrites the caller's own credential. The target account
// comes from the token, never from the request body.
func ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := ChangeUserPassword(config.DB, middleware.GetEmail(r), req.NewPassword); err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "password changed"})
}

// GetCurrentUser echoes the session claims plus the stored role, which the
// dashboards use as a display hint.
func GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	role, err := RoleByEmail(config.DB, claims.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := map[string]interface{}{
		"email": claims.Email,
		"role":  role,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
