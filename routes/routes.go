package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/khasmak/api/handlers"
	"github.com/khasmak/api/middleware"
	"github.com/khasmak/api/models"
)

// RegisterRoutes wires the HTTP surface: public login, JWT-protected role
// subtrees, and the static front end behind the navigation guard.
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// Public routes (no authentication required)
	r.HandleFunc("/api/v1/login", handlers.Login).Methods("POST")

	// Protected API routes (require authentication)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	api.HandleFunc("/me", handlers.GetCurrentUser).Methods("GET")
	api.HandleFunc("/change-password", handlers.ChangePassword).Methods("POST")

	// Reference data (any authenticated role)
	api.HandleFunc("/companies/{company}/contracts", handlers.GetContracts).Methods("GET")
	api.HandleFunc("/companies/{company}/workitems", handlers.GetWorkItems).Methods("GET")
	api.HandleFunc("/companies/{company}/contractors", handlers.GetContractors).Methods("GET")

	submitters := []models.Role{models.RoleUser}
	reviewers := []models.Role{models.RoleAdmin, models.RoleOwner}
	owners := []models.Role{models.RoleOwner}

	// Submitting and own history
	api.Handle("/submissions", middleware.RequireRole(submitters,
		http.HandlerFunc(handlers.SubmitReport))).Methods("POST")
	api.Handle("/submissions/history", middleware.RequireRole(submitters,
		http.HandlerFunc(handlers.GetHistory))).Methods("GET")

	// Review queue, archive and export
	api.Handle("/submissions", middleware.RequireRole(reviewers,
		http.HandlerFunc(handlers.GetAllSubmissions))).Methods("GET")
	api.Handle("/submissions/export", middleware.RequireRole(reviewers,
		http.HandlerFunc(handlers.ExportSubmissions))).Methods("GET")
	api.Handle("/submissions/{reportId}/deductions/{deductionId}", middleware.RequireRole(reviewers,
		http.HandlerFunc(handlers.UpdateDeductionStatusHandler))).Methods("PUT")

	// Owner data editing
	api.Handle("/owner/database", middleware.RequireRole(owners,
		http.HandlerFunc(handlers.GetDatabase))).Methods("GET")
	api.Handle("/owner/database", middleware.RequireRole(owners,
		http.HandlerFunc(handlers.UpdateDatabaseHandler))).Methods("PUT")
	api.Handle("/owner/users", middleware.RequireRole(owners,
		http.HandlerFunc(handlers.GetUsers))).Methods("GET")
	api.Handle("/owner/users", middleware.RequireRole(owners,
		http.HandlerFunc(handlers.CreateUser))).Methods("POST")
	api.Handle("/owner/users/{email}", middleware.RequireRole(owners,
		http.HandlerFunc(handlers.UpdateUser))).Methods("PUT")
	api.Handle("/owner/users/{email}", middleware.RequireRole(owners,
		http.HandlerFunc(handlers.RemoveUser))).Methods("DELETE")

	// Static front end behind the page-navigation guard
	r.PathPrefix("/").Handler(middleware.NavigationGuard(
		http.FileServer(http.Dir("./static"))))

	return r
}
