package errors

import (
	"errors"
)

// As is errors.As narrowed to our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is. Two *Error values match on code, and on reason when
// the target names one.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// find returns the outermost *Error in err's chain
func find(err error) *Error {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil
	}
	return e
}

// GetCode returns the code of err. A nil error is CodeOK and an error
// from outside this package is CodeInternal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e := find(err); e != nil {
		return e.Code
	}
	return CodeInternal
}

// GetReason returns the domain reason of err, or "" when it has none
func GetReason(err error) Reason {
	if e := find(err); e != nil {
		return e.Reason
	}
	return ""
}

// GetMeta returns the metadata attached to err
func GetMeta(err error) map[string]interface{} {
	if e := find(err); e != nil {
		return e.Meta
	}
	return nil
}

// GetMessage returns the message without code or cause, falling back to
// err.Error() for foreign errors
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := find(err); e != nil {
		return e.Message
	}
	return err.Error()
}

// IsNotFound reports a missing actor or design
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument reports a rejected input
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsAlreadyExists reports a duplicate design ID
func IsAlreadyExists(err error) bool { return GetCode(err) == CodeAlreadyExists }

// IsInternal reports an unexpected failure
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

// IsUnavailable reports a dependency or actor that cannot be reached right now
func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }

// IsFailedPrecondition reports an operation the current state does not allow
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

// IsAborted reports an operation stopped by a conflict
func IsAborted(err error) bool { return GetCode(err) == CodeAborted }
