package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/khasmak/api/config"
	"github.com/khasmak/api/models"
)

// GetDatabase returns the whole document for the owner dashboard.
func GetDatabase(w http.ResponseWriter, r *http.Request) {
	db, err := config.DB.Load()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(db)
}

// UpdateDatabaseHandler applies a partial owner edit (users and/or company
// reference lists) with top-level merge semantics.
func UpdateDatabaseHandler(w http.ResponseWriter, r *http.Request) {
	var upd DatabaseUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := UpdateDatabase(config.DB, upd); err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "database updated"})
}

// GetUsers lists every account.
func GetUsers(w http.ResponseWriter, r *http.Request) {
	db, err := config.DB.Load()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(db.Users)
}

// CreateUser adds an account; email and password are required.
func CreateUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := AddUser(config.DB, u); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// UpdateUser replaces the account in the path. An omitted password keeps
// the stored credential.
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := EditUser(config.DB, mux.Vars(r)["email"], u); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveUser deletes the account in the path. Owner accounts are refused.
func RemoveUser(w http.ResponseWriter, r *http.Request) {
	if err := DeleteUser(config.DB, mux.Vars(r)["email"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
