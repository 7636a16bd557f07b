package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundfWraps(t *testing.T) {
	err := NotFoundf("test %d", 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("NotFoundf result must match ErrNotFound, got %v", err)
	}
	if want := "test 42: not found"; err.Error() != want {
		t.Errorf("NotFoundf message = %q, want %q", err.Error(), want)
	}

	wrapped := fmt.Errorf("loading: %w", err)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped NotFoundf must still match ErrNotFound")
	}
}

func TestTypedErrorsDispatch(t *testing.T) {
	var validationErr *ValidationError
	if !errors.As(Validationf("bad %s", "field"), &validationErr) {
		t.Fatal("Validationf must yield a *ValidationError")
	}
	if validationErr.Error() != "bad field" {
		t.Errorf("unexpected message %q", validationErr.Error())
	}

	var batchErr *BatchValidationError
	err := error(&BatchValidationError{Items: []BatchItemError{{Index: 3, Reason: "empty option_b"}}})
	if !errors.As(err, &batchErr) {
		t.Fatal("BatchValidationError must dispatch via errors.As")
	}
	if len(batchErr.Items) != 1 || batchErr.Items[0].Index != 3 {
		t.Errorf("batch items not preserved: %+v", batchErr.Items)
	}

	var duplicateErr *DuplicateNameError
	if !errors.As(error(&DuplicateNameError{Name: "Science"}), &duplicateErr) {
		t.Fatal("DuplicateNameError must dispatch via errors.As")
	}
}
