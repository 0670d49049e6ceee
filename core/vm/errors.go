// Copyright 2021 The The 420Integrated Development Group
// This file is part of the go-420coin library.
//
// The go-420coin library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-420coin library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-420coin library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"fmt"
)

// ValidationError classifies why a container was rejected. Each value
// corresponds to exactly one rejection rule; a container that passes every
// rule yields a nil error rather than a ValidationError.
type ValidationError uint8

// List of container validation errors
const (
	ErrInvalidPrefix ValidationError = iota + 1
	ErrEOFVersionUnknown
	ErrSectionHeadersNotTerminated
	ErrCodeSectionMissing
	ErrMultipleCodeSections
	ErrMultipleDataSections
	ErrZeroSectionSize
	ErrUnknownSectionID
	ErrOddTableSectionSize
	ErrInvalidSectionBodiesSize
	ErrUndefinedInstruction
	ErrTruncatedPush
	ErrMissingImmediateArgument

	maxValidationError = ErrMissingImmediateArgument
)

// successKind is the classification reported for a valid container.
const successKind = "success"

var validationErrorKinds = [...]string{
	ErrInvalidPrefix:               "invalid_prefix",
	ErrEOFVersionUnknown:           "eof_version_unknown",
	ErrSectionHeadersNotTerminated: "section_headers_not_terminated",
	ErrCodeSectionMissing:          "code_section_missing",
	ErrMultipleCodeSections:        "multiple_code_sections",
	ErrMultipleDataSections:        "multiple_data_sections",
	ErrZeroSectionSize:             "zero_section_size",
	ErrUnknownSectionID:            "unknown_section_id",
	ErrOddTableSectionSize:         "odd_table_section_size",
	ErrInvalidSectionBodiesSize:    "invalid_section_bodies_size",
	ErrUndefinedInstruction:        "undefined_instruction",
	ErrTruncatedPush:               "truncated_push",
	ErrMissingImmediateArgument:    "missing_immediate_argument",
}

var validationErrorMessages = [...]string{
	ErrInvalidPrefix:               "invalid container prefix",
	ErrEOFVersionUnknown:           "unknown container version",
	ErrSectionHeadersNotTerminated: "section headers not terminated",
	ErrCodeSectionMissing:          "code section missing",
	ErrMultipleCodeSections:        "multiple code sections",
	ErrMultipleDataSections:        "multiple data sections",
	ErrZeroSectionSize:             "zero section size",
	ErrUnknownSectionID:            "unknown section id",
	ErrOddTableSectionSize:         "odd table section size",
	ErrInvalidSectionBodiesSize:    "section bodies do not match declared sizes",
	ErrUndefinedInstruction:        "undefined instruction",
	ErrTruncatedPush:               "truncated push",
	ErrMissingImmediateArgument:    "missing immediate argument",
}

func (e ValidationError) Error() string {
	if e == 0 || e > maxValidationError {
		return fmt.Sprintf("validation error %d", uint8(e))
	}
	return validationErrorMessages[e]
}

// Kind returns the stable snake_case name of the error, as used by test
// fixtures and tooling output.
func (e ValidationError) Kind() string {
	if e == 0 || e > maxValidationError {
		return fmt.Sprintf("unknown_%d", uint8(e))
	}
	return validationErrorKinds[e]
}

// ValidationErrors returns every member of the taxonomy in rule order.
func ValidationErrors() []ValidationError {
	errs := make([]ValidationError, 0, maxValidationError)
	for e := ErrInvalidPrefix; e <= maxValidationError; e++ {
		errs = append(errs, e)
	}
	return errs
}

// ErrorKind classifies the outcome of ValidateEOF: "success" for a nil error,
// the error's Kind for a ValidationError.
func ErrorKind(err error) string {
	if err == nil {
		return successKind
	}
	if verr, ok := err.(ValidationError); ok {
		return verr.Kind()
	}
	return "unclassified"
}

// ParseErrorKind is the inverse of ErrorKind. It returns a nil error value
// for "success".
func ParseErrorKind(kind string) (error, bool) {
	if kind == successKind {
		return nil, true
	}
	for e := ErrInvalidPrefix; e <= maxValidationError; e++ {
		if validationErrorKinds[e] == kind {
			return e, true
		}
	}
	return nil, false
}
