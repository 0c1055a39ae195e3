package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/giftregistry/pkg/validator"
)

type sampleStruct struct {
	InventoryID string `validate:"required,uuid"`
	Name        string `validate:"required,notblank,max=10"`
	Email       string `validate:"omitempty,email"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		InventoryID: "550e8400-e29b-41d4-a716-446655440000",
		Name:        "hello",
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["InventoryID"] != "This field is required" {
		t.Errorf("unexpected InventoryID message: %q", m["InventoryID"])
	}
	if m["Name"] != "This field is required" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_uuid(t *testing.T) {
	s := sampleStruct{InventoryID: "not-a-uuid", Name: "ok"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["InventoryID"] != "Must be a valid UUID" {
		t.Errorf("unexpected InventoryID message: %q", m["InventoryID"])
	}
}

func TestFormatValidationErrors_notblank(t *testing.T) {
	s := sampleStruct{InventoryID: "550e8400-e29b-41d4-a716-446655440000", Name: "   "}
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&s))
	if m["Name"] != "Must not be blank" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{InventoryID: "550e8400-e29b-41d4-a716-446655440000", Name: "12345678901"} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Name"] != "Maximum length is 10" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type itemReq struct {
	InventoryID string `json:"inventoryId" validate:"required,uuid"`
	Description string `json:"description" validate:"required,notblank,max=255"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"inventoryId":"550e8400-e29b-41d4-a716-446655440000","description":"teapot"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Description != "teapot" {
		t.Errorf("unexpected Description: %q", req.Description)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"description":"teapot"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing inventoryId")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_invalidUUID(t *testing.T) {
	body := `{"inventoryId":"not-uuid","description":"teapot"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for invalid UUID")
	}
	if !strings.Contains(w.Body.String(), "UUID") {
		t.Errorf("expected UUID error in body, got: %s", w.Body.String())
	}
}

type memberReq struct {
	Role   string `json:"role"   validate:"required_without=Status,omitempty,oneof=ADMIN CLAIMANT VIEWER"`
	Status string `json:"status" validate:"omitempty,oneof=PENDING ACTIVE"`
}

func TestFormatValidationErrors_oneofAndRequiredWithout(t *testing.T) {
	tests := []struct {
		name  string
		in    memberReq
		field string
		want  string
	}{
		{"unknown role", memberReq{Role: "OWNER"}, "role", "Must be one of: ADMIN, CLAIMANT, VIEWER"},
		{"unknown status", memberReq{Status: "GONE"}, "status", "Must be one of: PENDING, ACTIVE"},
		{"neither field", memberReq{}, "role", "Required when Status is not set"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&tt.in))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q (all: %v)", tt.field, m[tt.field], tt.want, m)
			}
		})
	}

	if err := pkgvalidator.Validate(&memberReq{Status: "ACTIVE"}); err != nil {
		t.Errorf("status alone should be enough, got %v", err)
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	body := `{"inventoryId":"550e8400-e29b-41d4-a716-446655440000","description":"` + strings.Repeat("x", 100) + `"}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Body = http.MaxBytesReader(w, r.Body, 32)

	if _, ok := pkgvalidator.ValidateRequest[itemReq](w, r); ok {
		t.Fatal("expected ok=false for oversized body")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}

func TestValidateRequest_blankDescription(t *testing.T) {
	body := `{"inventoryId":"550e8400-e29b-41d4-a716-446655440000","description":"  \t "}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	if _, ok := pkgvalidator.ValidateRequest[itemReq](w, r); ok {
		t.Fatal("expected ok=false for blank description")
	}
	if !strings.Contains(w.Body.String(), "Must not be blank") {
		t.Errorf("expected blank message, got: %s", w.Body.String())
	}
}
