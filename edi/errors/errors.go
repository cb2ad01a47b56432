package errors

import (
	"fmt"
	"strings"
)

// RequiredFieldError reports a single claim field that must be populated
// before a transaction can be serialized. Field holds the path from the claim
// root, e.g. "billingProvider.npi" or "services[2].procedure".
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// ValidationError aggregates every required-field failure found during the
// pre-serialization pass. No text is emitted when one of these is returned.
type ValidationError struct {
	Errs []error
	Msg  string
}

func (e *ValidationError) Error() string {
	details := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		details = append(details, err.Error())
	}
	return fmt.Sprintf("Validation Error. Msg: %s, Err: %s", e.Msg, strings.Join(details, "; "))
}
