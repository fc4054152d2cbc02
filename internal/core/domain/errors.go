package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotFound = errors.New("not found")
var ErrApplicantNotFound = errors.New("applicant not found")
var ErrCompanyNotFound = errors.New("company not found")
var ErrOfferNotFound = errors.New("offer not found")
var ErrTokenNotFound = errors.New("token not found")
var ErrDuplicateRow = errors.New("unique constraint violated")

// Canonical messages returned in field-level validation errors.
const (
	MsgFieldRequired      = "This field is required."
	MsgUsernameTaken      = "A user with that username already exists."
	MsgIdentificationUsed = "applicant with this identification number already exists."
	MsgNITTaken           = "company with this nit already exists."
	MsgBadLogin           = "Unable to log in with provided credentials."
)

// NonFieldErrors is the pseudo-field used for errors that are not tied to a
// single input field (e.g. a failed login).
const NonFieldErrors = "non_field_errors"

// FieldErrors maps an input field name to the list of validation messages
// raised against it. It implements error so services can return it directly
// and the HTTP layer can render it as a 400 body unchanged.
type FieldErrors map[string][]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed on: %s", strings.Join(fields, ", "))
}

// Add appends a message to the given field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// MsgInvalidPK is the message raised when a submitted foreign key does not
// reference an existing row.
func MsgInvalidPK(id uint) string {
	return fmt.Sprintf("Invalid pk %q - object does not exist.", fmt.Sprint(id))
}
