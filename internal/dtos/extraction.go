package dtos

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jobtrail/jobtrail/internal/apperr"
)

// ExtractedJobEvent is the fully-defaulted record produced from a raw
// extraction response. TechStack stays nil when the model returned no list
// at all, as opposed to an explicit empty list.
type ExtractedJobEvent struct {
	JobTitle       string
	CompanyName    string
	CoverLetter    string
	TechStack      []string
	JobDutySummary string
	DatePosted     string
}

const (
	DefaultJobTitle    = "Unknown Title"
	DefaultCompanyName = "Unknown Company"
)

// ValidateExtraction applies the sentinel defaults to the raw field mapping
// returned by the extraction client. A field that is present but carries an
// uncoercible type (e.g. tech_stack as a string) surfaces a validation
// error instead of being silently coerced, so upstream model errors are not
// masked.
func ValidateExtraction(raw map[string]json.RawMessage) (*ExtractedJobEvent, error) {
	const op = "dtos.ValidateExtraction"

	out := &ExtractedJobEvent{}

	var err error
	if out.JobTitle, err = stringField(raw, "job_title", DefaultJobTitle); err != nil {
		return nil, apperr.E(apperr.CodeValidation, op, "job_title", err)
	}
	if out.CompanyName, err = stringField(raw, "company_name", DefaultCompanyName); err != nil {
		return nil, apperr.E(apperr.CodeValidation, op, "company_name", err)
	}
	if out.CoverLetter, err = stringField(raw, "cover_letter", ""); err != nil {
		return nil, apperr.E(apperr.CodeValidation, op, "cover_letter", err)
	}
	if out.JobDutySummary, err = stringField(raw, "job_duty_summary", ""); err != nil {
		return nil, apperr.E(apperr.CodeValidation, op, "job_duty_summary", err)
	}
	if out.DatePosted, err = stringField(raw, "date_posted", ""); err != nil {
		return nil, apperr.E(apperr.CodeValidation, op, "date_posted", err)
	}
	if out.TechStack, err = stringListField(raw, "tech_stack"); err != nil {
		return nil, apperr.E(apperr.CodeValidation, op, "tech_stack", err)
	}
	return out, nil
}

func stringField(raw map[string]json.RawMessage, key, fallback string) (string, error) {
	v, ok := raw[key]
	if !ok || isNull(v) {
		return fallback, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", fmt.Errorf("expected string, got %s", v)
	}
	return s, nil
}

// stringListField returns nil for missing/null (the "no list" marker) and a
// non-nil slice otherwise.
func stringListField(raw map[string]json.RawMessage, key string) ([]string, error) {
	v, ok := raw[key]
	if !ok || isNull(v) {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(v, &list); err != nil {
		return nil, fmt.Errorf("expected list of strings, got %s", v)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
