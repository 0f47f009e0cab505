package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/khasmak/api/config"
	"github.com/khasmak/api/middleware"
	"github.com/khasmak/api/models"
)

// SubmitReport accepts a draft report from the form layer and stores it.
// The submitter is whoever holds the token.
func SubmitReport(w http.ResponseWriter, r *http.Request) {
	var payload SubmitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	payload.UserEmail = middleware.GetEmail(r)

	sub, err := SubmitDeductions(config.DB, payload)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sub)
}

// GetHistory returns the caller's own submissions, newest first.
func GetHistory(w http.ResponseWriter, r *http.Request) {
	subs, err := SubmissionHistory(config.DB, middleware.GetEmail(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subs)
}

// GetAllSubmissions is the reviewers' listing: every report newest first,
// narrowed by the optional archive filters (status=pending, user, from, to).
func GetAllSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := AllSubmissions(config.DB)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	subs, err = applyQueryFilters(subs, r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subs)
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// UpdateDeductionStatusHandler is the review action: approve or reject one
// line item and re-derive the report status.
func UpdateDeductionStatusHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req updateStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	status, ok := reviewStatus(req.Status)
	if !ok {
		http.Error(w, "status must be approved or rejected", http.StatusBadRequest)
		return
	}

	report, err := UpdateDeductionStatus(config.DB, vars["reportId"], vars["deductionId"], status, middleware.GetEmail(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// reviewStatus maps the API's English disposition onto the stored wire
// value; the stored values themselves are also accepted.
func reviewStatus(s string) (string, bool) {
	switch s {
	case "approved", models.StatusApproved:
		return models.StatusApproved, true
	case "rejected", models.StatusRejected:
		return models.StatusRejected, true
	}
	return "", false
}

func applyQueryFilters(subs []models.Submission, r *http.Request) ([]models.Submission, error) {
	q := r.URL.Query()

	if q.Get("status") == "pending" {
		subs = PendingSubmissions(subs)
	}

	var f ArchiveFilter
	f.UserEmail = q.Get("user")
	if v := q.Get("from"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, reportingLocation)
		if err != nil {
			return nil, errInvalidDate(v)
		}
		f.From = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.ParseInLocation("2006-01-02", v, reportingLocation)
		if err != nil {
			return nil, errInvalidDate(v)
		}
		f.To = t
	}
	if f.UserEmail != "" || !f.From.IsZero() || !f.To.IsZero() {
		subs = FilterSubmissions(subs, f)
	}
	return subs, nil
}
