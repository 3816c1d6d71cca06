package apperr

import "fmt"

// Kind classifies a domain failure. Every failed action leaves prior state
// untouched; the HTTP layer maps kinds to status codes.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindInvalidTransition
	KindNotEligible
	KindDuplicateClaim
	KindAlreadyReviewed
	KindPaymentCallback
	KindNotFound
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidTransition:
		return "invalid_transition"
	case KindNotEligible:
		return "not_eligible"
	case KindDuplicateClaim:
		return "duplicate_claim"
	case KindAlreadyReviewed:
		return "already_reviewed"
	case KindPaymentCallback:
		return "payment_callback"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	}
	return "unknown"
}

// Error carries a user-presentable message and, for validation failures, the
// per-field problems.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation reports malformed input with per-field problems.
func Validation(fields map[string]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

// Validationf reports a single-message validation failure.
func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// InvalidTransition reports an action attempted outside its legal source state.
func InvalidTransition(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

// NotEligible reports a violated workflow precondition.
func NotEligible(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotEligible, Message: fmt.Sprintf(format, args...)}
}

// DuplicateClaim reports a second claim on the same item by the same claimant.
func DuplicateClaim() *Error {
	return &Error{Kind: KindDuplicateClaim, Message: "you already claimed this item"}
}

// AlreadyReviewed reports a second review for the same (item, claimant) pair.
func AlreadyReviewed() *Error {
	return &Error{Kind: KindAlreadyReviewed, Message: "you have already reviewed this donation"}
}

// PaymentCallback reports a malformed or unrecognized gateway callback.
func PaymentCallback(format string, args ...interface{}) *Error {
	return &Error{Kind: KindPaymentCallback, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports an absent entity. Rows not owned by the caller report the
// same error so existence is not leaked through authorization.
func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", what)}
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden reports an authenticated caller without the required role.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// KindOf returns the kind of err, or 0 for non-domain errors.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return 0
}
