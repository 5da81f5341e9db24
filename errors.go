package larch

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode classifies the failures Parse and the Request setters can
// produce.
type ErrorCode int

const (
	// ErrorCodeTypeMismatch indicates a recognized field with the wrong
	// BSON type.
	ErrorCodeTypeMismatch ErrorCode = iota + 1
	// ErrorCodeFailedToParse indicates a recognized field whose value
	// cannot be interpreted under any accepted shape.
	ErrorCodeFailedToParse
	// ErrorCodeUnrecognizedField indicates a top-level field name outside
	// the recognized set.
	ErrorCodeUnrecognizedField
	// ErrorCodeIllegalOperation indicates a well-typed option that is
	// disallowed in the current engine mode.
	ErrorCodeIllegalOperation
	// ErrorCodeConflictingOptions indicates a mutually exclusive
	// combination of options.
	ErrorCodeConflictingOptions
	// ErrorCodeInvalidBatchSize indicates a negative batch size passed
	// directly to SetBatchSize. Parse never produces it for remote input;
	// hitting it means a caller bug.
	ErrorCodeInvalidBatchSize
)

// Error is the concrete error type produced by Parse and by Request
// setters.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(code ErrorCode, format string, args ...interface{}) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func hasCode(err error, code ErrorCode) bool {
	reqErr, ok := errors.Cause(err).(*Error)
	return ok && reqErr.Code == code
}

// IsTypeMismatch reports whether err (possibly wrapped) carries the
// type-mismatch code. The remaining predicates follow the same contract
// for their codes.
func IsTypeMismatch(err error) bool { return hasCode(err, ErrorCodeTypeMismatch) }

func IsFailedToParse(err error) bool { return hasCode(err, ErrorCodeFailedToParse) }

func IsUnrecognizedField(err error) bool { return hasCode(err, ErrorCodeUnrecognizedField) }

func IsIllegalOperation(err error) bool { return hasCode(err, ErrorCodeIllegalOperation) }

func IsConflictingOptions(err error) bool { return hasCode(err, ErrorCodeConflictingOptions) }

func IsInvalidBatchSize(err error) bool { return hasCode(err, ErrorCodeInvalidBatchSize) }
