package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khasmak/api/models"
)

func TestLoadMissingFile(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := st.Load(); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("Load on missing file returned %v, expected ErrStoreUnavailable", err)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	st := NewFileStore(path)
	if _, err := st.Load(); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("Load on corrupt file returned %v, expected ErrStoreUnavailable", err)
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "no-such-dir", "database.json"))
	if err := st.Save(&models.Database{}); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("Save into missing directory returned %v, expected ErrStoreUnavailable", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "database.json"))

	in := &models.Database{
		Users: []models.User{
			{Email: "a@x.com", Password: "secret", Role: models.RoleUser},
		},
		DMCData: models.CompanyData{
			Contracts:   []string{"عقد ١"},
			WorkItems:   []string{"حفر"},
			Contractors: []string{"Ali"},
		},
		Submissions: []models.Submission{
			{
				ReportID:  "report-1",
				Timestamp: "2024-03-01T10:00:00Z",
				UserEmail: "a@x.com",
				Status:    models.StatusPending,
				Company:   models.CompanyDMC,
				Contractors: []models.ContractorSubmission{
					{
						ID:             "c1",
						ContractorName: "Ali",
						Deductions: []models.Deduction{
							{ID: "d1", Quantity: models.Num(10), UnitPrice: models.Num(5), Status: models.StatusPending},
						},
					},
				},
				GrandTotal: 50,
			},
		},
	}

	if err := st.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(out.Users) != 1 || out.Users[0].Password != "secret" {
		t.Errorf("users did not round-trip: %+v", out.Users)
	}
	if len(out.Submissions) != 1 || out.Submissions[0].GrandTotal != 50 {
		t.Errorf("submissions did not round-trip: %+v", out.Submissions)
	}
	d := out.Submissions[0].Contractors[0].Deductions[0]
	if d.Quantity.Float() != 10 || d.UnitPrice.Float() != 5 {
		t.Errorf("deduction numerics did not round-trip: %+v", d)
	}
}

// Documents written by the original application carry "" for untouched
// numeric fields; those must survive a load/save cycle unchanged.
func TestEmptyNumericFieldsPreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	doc := `{
  "users": [],
  "dmc_data": {"contracts": [], "workItems": [], "contractors": []},
  "curve_data": {"contracts": [], "workItems": [], "contractors": []},
  "submissions": [
    {
      "reportId": "report-1",
      "timestamp": "2024-03-01T10:00:00Z",
      "userEmail": "a@x.com",
      "status": "قيد المراجعة",
      "company": "DMC",
      "contractors": [
        {
          "id": "c1",
          "contractorName": "Ali",
          "notes": "",
          "deductions": [
            {
              "id": "d1",
              "contractName": "",
              "personName": "",
              "itemName": "",
              "meterEquivalentValue": "",
              "meterEquivalentUnit": "",
              "workDescription": "",
              "quantity": 10,
              "unitPrice": 5,
              "status": "قيد المراجعة"
            }
          ]
        }
      ],
      "grandTotal": 50
    }
  ]
}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	st := NewFileStore(path)
	db, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := st.Save(db); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"meterEquivalentValue": ""`) {
		t.Errorf("empty meterEquivalentValue was not preserved on rewrite:\n%s", raw)
	}
}
