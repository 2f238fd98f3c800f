package validate_test

import (
	"strings"
	"testing"

	"shoplist/internal/validate"
)

func TestCreateListAccumulatesAllErrors(t *testing.T) {
	long := strings.Repeat("a", 101)
	longCat := strings.Repeat("b", 51)

	errs := validate.CreateList(long, longCat)
	if len(errs) != 2 {
		t.Fatalf("want 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestCreateListMissingName(t *testing.T) {
	errs := validate.CreateList("", "")
	if len(errs) != 1 || !strings.Contains(errs[0], "Name is required") {
		t.Fatalf("want 'Name is required' error, got %v", errs)
	}

	// Blank after trim counts as missing
	errs = validate.CreateList("   ", "")
	if len(errs) != 1 || !strings.Contains(errs[0], "Name is required") {
		t.Fatalf("want 'Name is required' for blank name, got %v", errs)
	}
}

func TestCreateListNameTooLong(t *testing.T) {
	errs := validate.CreateList(strings.Repeat("A", 101), "")
	if len(errs) != 1 || !strings.Contains(errs[0], "must not exceed 100 characters") {
		t.Fatalf("want length error, got %v", errs)
	}

	// Exactly 100 is fine
	if errs := validate.CreateList(strings.Repeat("A", 100), ""); len(errs) != 0 {
		t.Fatalf("100-char name should pass, got %v", errs)
	}
}

func TestCreateListCountsCharactersNotBytes(t *testing.T) {
	// "á" is two bytes in UTF-8; 60 of them must still fit the 100-char limit.
	if errs := validate.CreateList(strings.Repeat("á", 60), ""); len(errs) != 0 {
		t.Fatalf("60-char accented name should pass, got %v", errs)
	}
	if errs := validate.CreateList(strings.Repeat("á", 100), strings.Repeat("ž", 50)); len(errs) != 0 {
		t.Fatalf("100-char name and 50-char category should pass, got %v", errs)
	}

	errs := validate.CreateList(strings.Repeat("á", 101), strings.Repeat("ž", 51))
	if len(errs) != 2 {
		t.Fatalf("want name and category length errors, got %v", errs)
	}
}

func TestUpdateListCountsCharactersNotBytes(t *testing.T) {
	if errs := validate.UpdateList("abc", strings.Repeat("č", 100)); len(errs) != 0 {
		t.Fatalf("100-char accented name should pass, got %v", errs)
	}
	errs := validate.UpdateList("abc", strings.Repeat("č", 101))
	if len(errs) != 1 || !strings.Contains(errs[0], "must not exceed 100 characters") {
		t.Fatalf("want length error, got %v", errs)
	}
}

func TestUpdateListRequiresIDAndName(t *testing.T) {
	errs := validate.UpdateList("", "")
	if len(errs) != 2 {
		t.Fatalf("want both id and name errors, got %v", errs)
	}
	if errs := validate.UpdateList("abc", "new name"); len(errs) != 0 {
		t.Fatalf("valid update should pass, got %v", errs)
	}
}

func TestListID(t *testing.T) {
	if errs := validate.ListID(" "); len(errs) != 1 {
		t.Fatalf("blank id should fail, got %v", errs)
	}
	if errs := validate.ListID("x"); len(errs) != 0 {
		t.Fatalf("non-empty id should pass, got %v", errs)
	}
}
