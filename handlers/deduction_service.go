package handlers

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/khasmak/api/models"
	"github.com/khasmak/api/store"
)

// Domain failures surfaced by the service layer. Handlers translate them to
// HTTP statuses; the messages are what the caller displays.
var (
	ErrReportNotFound    = errors.New("report not found")
	ErrDeductionNotFound = errors.New("deduction not found in report")
	ErrUserNotFound      = errors.New("user not found")
	ErrForbidden         = errors.New("operation not allowed")
	ErrValidation        = errors.New("validation failed")
)

// reportingLocation fixes the day boundaries used by archive date filters.
var reportingLocation = func() *time.Location {
	loc, err := time.LoadLocation("Africa/Cairo")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// SubmitPayload is a draft report handed over by the form layer.
type SubmitPayload struct {
	Company     models.Company                `json:"company"`
	Contractors []models.ContractorSubmission `json:"contractors"`
	UserEmail   string                        `json:"userEmail"`
}

// ValidateSubmitPayload re-checks server-side what the form layer should
// already have enforced: a known company, at least one named contractor,
// and positive quantity / non-negative unit price per line.
func ValidateSubmitPayload(p SubmitPayload) error {
	if p.Company != models.CompanyDMC && p.Company != models.CompanyCurve {
		return fmt.Errorf("%w: unknown company %q", ErrValidation, p.Company)
	}
	if p.UserEmail == "" {
		return fmt.Errorf("%w: submitter email is required", ErrValidation)
	}
	if len(p.Contractors) == 0 {
		return fmt.Errorf("%w: a report needs at least one contractor", ErrValidation)
	}
	for _, c := range p.Contractors {
		if c.ContractorName == "" {
			return fmt.Errorf("%w: contractor name is required", ErrValidation)
		}
		for _, d := range c.Deductions {
			if d.Quantity.Float() <= 0 {
				return fmt.Errorf("%w: quantity must be positive", ErrValidation)
			}
			if d.UnitPrice.Float() < 0 {
				return fmt.Errorf("%w: unit price cannot be negative", ErrValidation)
			}
		}
	}
	return nil
}

// SubmitDeductions turns a draft into a stored report: grand total summed
// over every line, a fresh report id, fresh deduction ids (client draft ids
// are discarded), every line reset to pending and the report itself pending.
func SubmitDeductions(st store.Store, p SubmitPayload) (*models.Submission, error) {
	if err := ValidateSubmitPayload(p); err != nil {
		return nil, err
	}
	db, err := st.Load()
	if err != nil {
		return nil, err
	}

	grandTotal := 0.0
	for _, c := range p.Contractors {
		for _, d := range c.Deductions {
			grandTotal += d.Total()
		}
	}

	sub := models.Submission{
		ReportID:   "report-" + uuid.NewString(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		UserEmail:  p.UserEmail,
		Status:     models.StatusPending,
		Company:    p.Company,
		GrandTotal: grandTotal,
	}
	for _, c := range p.Contractors {
		nc := c
		nc.Deductions = make([]models.Deduction, len(c.Deductions))
		for i, d := range c.Deductions {
			d.ID = uuid.NewString()
			d.Status = models.StatusPending
			d.StatusUpdateTimestamp = ""
			d.ReviewedBy = ""
			nc.Deductions[i] = d
		}
		sub.Contractors = append(sub.Contractors, nc)
	}

	db.Submissions = append(db.Submissions, sub)
	if err := st.Save(db); err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateDeductionStatus sets the disposition of one line item and re-derives
// the parent report's status by a full re-scan of its deductions. Nothing is
// persisted when the deduction cannot be found.
func UpdateDeductionStatus(st store.Store, reportID, deductionID, newStatus, reviewerEmail string) (*models.Submission, error) {
	if newStatus != models.StatusApproved && newStatus != models.StatusRejected {
		return nil, fmt.Errorf("%w: status must be approved or rejected", ErrValidation)
	}

	db, err := st.Load()
	if err != nil {
		return nil, err
	}

	var report *models.Submission
	for i := range db.Submissions {
		if db.Submissions[i].ReportID == reportID {
			report = &db.Submissions[i]
			break
		}
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	now := time.Now().UTC().Format(time.RFC3339)
	updated := false
	for ci := range report.Contractors {
		deductions := report.Contractors[ci].Deductions
		for di := range deductions {
			if deductions[di].ID == deductionID {
				deductions[di].Status = newStatus
				deductions[di].ReviewedBy = reviewerEmail
				deductions[di].StatusUpdateTimestamp = now
				updated = true
			}
		}
	}
	if !updated {
		return nil, ErrDeductionNotFound
	}

	report.DeriveStatus()

	if err := st.Save(db); err != nil {
		return nil, err
	}
	return report, nil
}

// SubmissionHistory returns one user's reports, newest first.
func SubmissionHistory(st store.Store, userEmail string) ([]models.Submission, error) {
	db, err := st.Load()
	if err != nil {
		return nil, err
	}
	out := []models.Submission{}
	for _, s := range db.Submissions {
		if s.UserEmail == userEmail {
			out = append(out, s)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// AllSubmissions returns every report, newest first.
func AllSubmissions(st store.Store) ([]models.Submission, error) {
	db, err := st.Load()
	if err != nil {
		return nil, err
	}
	subs := append([]models.Submission{}, db.Submissions...)
	sortNewestFirst(subs)
	return subs, nil
}

// PendingSubmissions is the admin review queue: reports still carrying the
// pending status.
func PendingSubmissions(subs []models.Submission) []models.Submission {
	out := []models.Submission{}
	for _, s := range subs {
		if s.Status == models.StatusPending {
			out = append(out, s)
		}
	}
	return out
}

// ArchiveFilter narrows an already-loaded submission list the way the admin
// archive does: optional submitter match, optional inclusive date range.
// Day bounds are taken in the reporting timezone; the comparison itself is
// on the stored instant.
type ArchiveFilter struct {
	UserEmail string
	From      time.Time // zero means unbounded
	To        time.Time // zero means unbounded
}

func FilterSubmissions(subs []models.Submission, f ArchiveFilter) []models.Submission {
	out := []models.Submission{}
	for _, s := range subs {
		if f.UserEmail != "" && s.UserEmail != f.UserEmail {
			continue
		}
		ts := parseTimestamp(s.Timestamp)
		if !f.From.IsZero() && ts.Before(startOfDay(f.From)) {
			continue
		}
		if !f.To.IsZero() && ts.After(endOfDay(f.To)) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// sortNewestFirst orders by the stored timestamp, descending. Stable, so
// equal timestamps keep submission order.
func sortNewestFirst(subs []models.Submission) {
	sort.SliceStable(subs, func(i, j int) bool {
		return parseTimestamp(subs[i].Timestamp).After(parseTimestamp(subs[j].Timestamp))
	})
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func startOfDay(t time.Time) time.Time {
	t = t.In(reportingLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, reportingLocation)
}

func endOfDay(t time.Time) time.Time {
	t = t.In(reportingLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, reportingLocation)
}
