package models

// Deduction and report status wire values. The persisted document predates
// this server and stores the Arabic labels directly, so the constants keep
// the exact stored strings.
const (
	StatusPending   = "قيد المراجعة"
	StatusApproved  = "موافقة"
	StatusRejected  = "مرفوض"
	StatusCompleted = "مكتمل"
)

// Deduction is one chargeable line item inside a contractor's entry.
type Deduction struct {
	ID                    string     `json:"id"`
	ContractName          string     `json:"contractName"`
	PersonName            string     `json:"personName"`
	ItemName              string     `json:"itemName"`
	MeterEquivalentValue  FlexNumber `json:"meterEquivalentValue"`
	MeterEquivalentUnit   string     `json:"meterEquivalentUnit"`
	WorkDescription       string     `json:"workDescription"`
	Quantity              FlexNumber `json:"quantity"`
	UnitPrice             FlexNumber `json:"unitPrice"`
	Status                string     `json:"status"`
	StatusUpdateTimestamp string     `json:"statusUpdateTimestamp,omitempty"`
	ReviewedBy            string     `json:"reviewedBy,omitempty"`
}

// Total is the line value as captured on the form; blank fields count as 0.
func (d Deduction) Total() float64 {
	return d.Quantity.Float() * d.UnitPrice.Float()
}

// ContractorSubmission groups one contractor's deductions inside a report.
type ContractorSubmission struct {
	ID             string      `json:"id"`
	ContractorName string      `json:"contractorName"`
	Notes          string      `json:"notes"`
	Deductions     []Deduction `json:"deductions"`
}

// Submission is one user-submitted batch of contractor deduction data.
// GrandTotal is fixed at submission time and never recomputed: it records
// submitted value, not approved value.
type Submission struct {
	ReportID    string                 `json:"reportId"`
	Timestamp   string                 `json:"timestamp"`
	UserEmail   string                 `json:"userEmail"`
	Status      string                 `json:"status"`
	Company     Company                `json:"company"`
	Contractors []ContractorSubmission `json:"contractors"`
	GrandTotal  float64                `json:"grandTotal"`
}

// HasPendingDeductions reports whether any line item is still unreviewed.
func (s *Submission) HasPendingDeductions() bool {
	for _, c := range s.Contractors {
		for _, d := range c.Deductions {
			if d.Status == StatusPending {
				return true
			}
		}
	}
	return false
}

// DeriveStatus recomputes the report status from its deductions: pending if
// any line is pending, completed otherwise. A full re-scan every time;
// reports are small.
func (s *Submission) DeriveStatus() {
	if s.HasPendingDeductions() {
		s.Status = StatusPending
	} else {
		s.Status = StatusCompleted
	}
}
