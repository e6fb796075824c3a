package http

import (
	"errors"
	"testing"
)

func TestStatusValidations(t *testing.T) {
	type P struct {
		Financial string `json:"status" validate:"finstatus"`
		Tender    string `json:"tenderStatus" validate:"tenderstatus"`
		Mode      string `json:"mode" validate:"instrumentmode"`
	}
	cv := NewValidator()

	ok := []P{
		{Financial: "Pending Approval", Tender: "Under Evaluation", Mode: "N/A"},
		{Financial: "Processed", Tender: "Won", Mode: "DD"},
	}
	for _, p := range ok {
		if err := cv.Validate(p); err != nil {
			t.Fatalf("expected valid %+v, got err: %v", p, err)
		}
	}

	err := cv.Validate(P{Financial: "approved", Tender: "Open", Mode: "Cheque"})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "status", "Pending Approval, Approved") {
		t.Fatalf("missing finstatus message: %+v", fe)
	}
	if !containsFieldMsg(fe, "tenderStatus", "Under Evaluation") {
		t.Fatalf("missing tenderstatus message: %+v", fe)
	}
	if !containsFieldMsg(fe, "mode", "DD, BG, Online, Cash, N/A") {
		t.Fatalf("missing instrumentmode message: %+v", fe)
	}
}

func TestJSONFieldNamesAndBuiltins(t *testing.T) {
	type P struct {
		Type   string  `json:"type" validate:"oneof=EMD PBG SD Other"`
		Date   string  `json:"dueDate" validate:"datetime=2006-01-02"`
		Amount float64 `json:"amount" validate:"gt=0"`
		Email  string  `json:"email,omitempty" validate:"email"`
	}
	cv := NewValidator()
	err := cv.Validate(P{Type: "Bond", Date: "01/02/2024", Email: "nope"})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	fe := ToFieldErrors(err)
	for _, want := range []struct{ field, msg string }{
		{"type", "EMD, PBG, SD, Other"},
		{"dueDate", "YYYY-MM-DD"},
		{"amount", "greater than 0"},
		{"email", "valid email"},
	} {
		if !containsFieldMsg(fe, want.field, want.msg) {
			t.Fatalf("missing %s/%q in %+v", want.field, want.msg, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Rate float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{1.29, 2.00, 0.9, 1.2} {
		if err := cv.Validate(P{Rate: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Rate: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Rate", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string  `validate:"required"`
		Min  int     `validate:"gte=10"`
		Max  int     `validate:"lte=5"`
		ROI  float64 `validate:"dec2,gte=0.90,lte=1.29"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Name: "",    // required
		Min:  9,     // gte=10
		Max:  6,     // lte=5
		ROI:  1.333, // dec2 + lte fail, but dec2 will trigger first
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	// required
	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	// gte
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	// lte
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	// dec2 mapping should show for ROI
	if !containsFieldMsg(fe, "ROI", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for ROI: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
