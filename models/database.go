package models

// Company identifies one of the two organizational contexts, each with its
// own reference lists.
type Company string

const (
	CompanyDMC   Company = "DMC"
	CompanyCurve Company = "CURVE"
)

// CompanyData holds the per-company reference lists used to populate the
// submission form. Owner edits replace each list wholesale.
type CompanyData struct {
	Contracts   []string `json:"contracts"`
	WorkItems   []string `json:"workItems"`
	Contractors []string `json:"contractors"`
}

// Database is the whole persisted document. It is always read and written as
// a unit; there are no partial updates at the storage layer.
type Database struct {
	Users       []User       `json:"users"`
	DMCData     CompanyData  `json:"dmc_data"`
	CurveData   CompanyData  `json:"curve_data"`
	Submissions []Submission `json:"submissions"`
}

// CompanyDataFor returns the reference lists for a company, or nil for an
// unknown company key.
func (db *Database) CompanyDataFor(c Company) *CompanyData {
	switch c {
	case CompanyDMC:
		return &db.DMCData
	case CompanyCurve:
		return &db.CurveData
	}
	return nil
}

// FindUser returns the index of the account matching email
// (case-insensitively), or -1.
func (db *Database) FindUser(email string) int {
	for i, u := range db.Users {
		if u.EmailEquals(email) {
			return i
		}
	}
	return -1
}
