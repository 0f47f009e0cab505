package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/khasmak/api/store"
)

func errInvalidDate(v string) error {
	return fmt.Errorf("%w: bad date %q, want YYYY-MM-DD", ErrValidation, v)
}

// writeServiceError maps a service failure onto an HTTP status. The error
// message is the human-readable text the UI displays as-is.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrStoreUnavailable):
		http.Error(w, "storage failure, nothing was saved", http.StatusServiceUnavailable)
	case errors.Is(err, ErrReportNotFound),
		errors.Is(err, ErrDeductionNotFound),
		errors.Is(err, ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
