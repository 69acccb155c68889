package validate_test

import (
	"testing"

	"github.com/ahmadsvu/stationery-hub-frontend/pkg/validate"
)

type productInput struct {
	Name      string  `json:"name"      validate:"required,max=50"`
	Price     float64 `json:"price"     validate:"numeric,min=0"`
	Category  string  `json:"category"  validate:"required,in=Pens,Paper,Notebooks"`
	ImageName string  `json:"imageName" validate:"nullable,max=20"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:      "Fountain Pen Set",
		Price:     45.99,
		Category:  "Pens",
		ImageName: "", // nullable — allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{Category: "Pens"})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
}

func TestNumericBounds(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Pen", Price: -1, Category: "Pens"})
	if _, ok := errs["price"]; !ok {
		t.Error("expected price below min to fail")
	}

	errs = validate.Struct(productInput{
		Name:     "this product name is far too long to pass the max rule check",
		Price:    1,
		Category: "Pens",
	})
	if _, ok := errs["name"]; !ok {
		t.Error("expected name over max length to fail")
	}
}

func TestInRule(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Pen", Price: 1, Category: "Snacks"})
	if _, ok := errs["category"]; !ok {
		t.Error("expected category outside the list to fail")
	}

	errs = validate.Struct(productInput{Name: "Pad", Price: 1, Category: "Paper"})
	if _, ok := errs["category"]; ok {
		t.Errorf("expected listed category to pass, got: %v", errs)
	}
}

func TestConfirmedRule(t *testing.T) {
	type in struct {
		NewPassword     string `json:"newPassword"     validate:"required,min=6"`
		ConfirmPassword string `json:"confirmPassword" validate:"required,confirmed=newPassword"`
	}

	errs := validate.Struct(in{NewPassword: "secret123", ConfirmPassword: "secret124"})
	if _, ok := errs["confirmPassword"]; !ok {
		t.Error("expected mismatched confirmation to fail")
	}

	errs = validate.Struct(in{NewPassword: "secret123", ConfirmPassword: "secret123"})
	if validate.HasErrors(errs) {
		t.Errorf("expected matching confirmation to pass, got: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Pen", Price: 1, Category: "Pens", ImageName: ""})
	if _, ok := errs["imageName"]; ok {
		t.Errorf("expected empty nullable field to be skipped, got: %v", errs)
	}

	errs = validate.Struct(productInput{
		Name:      "Pen",
		Price:     1,
		Category:  "Pens",
		ImageName: "a-file-name-longer-than-twenty.png",
	})
	if _, ok := errs["imageName"]; !ok {
		t.Error("expected non-empty nullable field to be validated")
	}
}

func TestInListKeepsFollowingRules(t *testing.T) {
	type in struct {
		Size string `json:"size" validate:"required,in=A4,A5,Letter,max=6"`
	}

	errs := validate.Struct(in{Size: "A5"})
	if validate.HasErrors(errs) {
		t.Errorf("expected listed value to pass, got: %v", errs)
	}

	errs = validate.Struct(in{Size: "A3"})
	if _, ok := errs["size"]; !ok {
		t.Error("expected unlisted value to fail")
	}
}
