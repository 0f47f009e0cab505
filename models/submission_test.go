package models

import "testing"

func TestDeductionTotal(t *testing.T) {
	tests := []struct {
		name      string
		deduction Deduction
		want      float64
	}{
		{"both set", Deduction{Quantity: Num(10), UnitPrice: Num(5)}, 50},
		{"blank quantity counts as zero", Deduction{UnitPrice: Num(5)}, 0},
		{"blank unit price counts as zero", Deduction{Quantity: Num(10)}, 0},
		{"both blank", Deduction{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.deduction.Total(); got != tt.want {
				t.Errorf("Total() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses [][]string // one inner slice per contractor
		want     string
	}{
		{"single pending line", [][]string{{StatusPending}}, StatusPending},
		{"single approved line", [][]string{{StatusApproved}}, StatusCompleted},
		{"single rejected line", [][]string{{StatusRejected}}, StatusCompleted},
		{"mixed across one contractor", [][]string{{StatusApproved, StatusPending}}, StatusPending},
		{"mixed across contractors", [][]string{{StatusApproved}, {StatusPending}}, StatusPending},
		{"all resolved across contractors", [][]string{{StatusApproved}, {StatusRejected}}, StatusCompleted},
		{"no deductions at all", [][]string{{}}, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := Submission{}
			for _, statuses := range tt.statuses {
				c := ContractorSubmission{}
				for _, st := range statuses {
					c.Deductions = append(c.Deductions, Deduction{Status: st})
				}
				sub.Contractors = append(sub.Contractors, c)
			}
			sub.DeriveStatus()
			if sub.Status != tt.want {
				t.Errorf("DeriveStatus() left status %q, expected %q", sub.Status, tt.want)
			}
		})
	}
}
