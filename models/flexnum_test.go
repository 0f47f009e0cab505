package models

import (
	"encoding/json"
	"testing"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantFloat float64
	}{
		{"number", `10`, true, 10},
		{"decimal", `7.5`, true, 7.5},
		{"zero", `0`, true, 0},
		{"numeric string", `"12.25"`, true, 12.25},
		{"empty string", `""`, false, 0},
		{"null", `null`, false, 0},
		{"non-numeric string", `"abc"`, false, 0},
		{"padded numeric string", `" 3 "`, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n FlexNumber
			if err := json.Unmarshal([]byte(tt.input), &n); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.input, err)
			}
			if n.Valid != tt.wantValid {
				t.Errorf("Unmarshal(%s).Valid = %v, expected %v", tt.input, n.Valid, tt.wantValid)
			}
			if n.Float() != tt.wantFloat {
				t.Errorf("Unmarshal(%s).Float() = %v, expected %v", tt.input, n.Float(), tt.wantFloat)
			}
		})
	}
}

func TestFlexNumberMarshal(t *testing.T) {
	tests := []struct {
		name  string
		input FlexNumber
		want  string
	}{
		{"unset round-trips as empty string", FlexNumber{}, `""`},
		{"integer", Num(5), `5`},
		{"decimal", Num(2.5), `2.5`},
		{"zero", Num(0), `0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.input)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("Marshal = %s, expected %s", out, tt.want)
			}
		})
	}
}

func TestFlexNumberString(t *testing.T) {
	if got := (FlexNumber{}).String(); got != "" {
		t.Errorf("unset String() = %q, expected empty", got)
	}
	if got := Num(12).String(); got != "12" {
		t.Errorf("Num(12).String() = %q, expected 12", got)
	}
	if got := Num(1.25).String(); got != "1.25" {
		t.Errorf("Num(1.25).String() = %q, expected 1.25", got)
	}
}
