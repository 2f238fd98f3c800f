package validate

import (
	"strings"
	"unicode/utf8"

	"shoplist/internal/domain"
)

// Validators accumulate every violated rule so callers see the complete
// list, not just the first failure. Length limits count characters, not
// bytes; list names here are routinely Czech.

func CreateList(name, category string) []string {
	var errs []string
	if strings.TrimSpace(name) == "" {
		errs = append(errs, "Name is required and must be a non-empty string")
	} else if utf8.RuneCountInString(strings.TrimSpace(name)) > domain.NameMaxLen {
		errs = append(errs, "Name must not exceed 100 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(category)) > domain.CategoryMaxLen {
		errs = append(errs, "Category must not exceed 50 characters")
	}
	return errs
}

func UpdateList(id, name string) []string {
	var errs []string
	if strings.TrimSpace(id) == "" {
		errs = append(errs, "ID is required and must be a string")
	}
	if strings.TrimSpace(name) == "" {
		errs = append(errs, "Name is required and must be a non-empty string")
	} else if utf8.RuneCountInString(strings.TrimSpace(name)) > domain.NameMaxLen {
		errs = append(errs, "Name must not exceed 100 characters")
	}
	return errs
}

func ListID(id string) []string {
	var errs []string
	if strings.TrimSpace(id) == "" {
		errs = append(errs, "ID is required and must be a string")
	}
	return errs
}
