package errors

import "fmt"

// Reason narrows a Code to a domain failure so callers can tell, for
// example, a locked field apart from any other aborted operation.
type Reason string

// Domain reasons
const (
	ReasonActorUnavailable Reason = "ACTOR_UNAVAILABLE"
	ReasonRestrictedGear   Reason = "RESTRICTED_GEAR"
	ReasonDecodeFailed     Reason = "DECODE_FAILED"
	ReasonLockConflict     Reason = "LOCK_CONFLICT"
	ReasonWriteProtected   Reason = "WRITE_PROTECTED"
)

// ActorUnavailable reports that an actor snapshot could not be read.
// The operation was a no-op and may be retried on the next tick.
func ActorUnavailable(actor string) *Error {
	return Newf(CodeUnavailable, "actor %s is not available", actor).
		WithReason(ReasonActorUnavailable).
		WithMeta("actor", actor)
}

// RestrictedGear reports an item that is not legal for the actor's race and gender
func RestrictedGear(slot string, item string) *Error {
	return Newf(CodeFailedPrecondition, "%s %s is restricted for the current race and gender", slot, item).
		WithReason(ReasonRestrictedGear).
		WithMeta("slot", slot).
		WithMeta("item", item)
}

// DecodeFailed reports a malformed or unsupported serialized state
func DecodeFailed(format string, args ...interface{}) *Error {
	return New(CodeInvalidArgument, fmt.Sprintf(format, args...)).
		WithReason(ReasonDecodeFailed)
}

// LockConflict reports a mutation of a fixed field without the force path
func LockConflict(field string) *Error {
	return Newf(CodeAborted, "%s is fixed", field).
		WithReason(ReasonLockConflict).
		WithMeta("field", field)
}

// WriteProtected reports a change to a write-protected stored design
func WriteProtected(id string) *Error {
	return Newf(CodeFailedPrecondition, "design %s is write protected", id).
		WithReason(ReasonWriteProtected).
		WithMeta("design_id", id)
}

// IsActorUnavailable checks if an error is an unavailable-actor error
func IsActorUnavailable(err error) bool {
	return GetReason(err) == ReasonActorUnavailable
}

// IsRestrictedGear checks if an error is a restricted gear rejection
func IsRestrictedGear(err error) bool {
	return GetReason(err) == ReasonRestrictedGear
}

// IsDecodeFailed checks if an error is a decode failure
func IsDecodeFailed(err error) bool {
	return GetReason(err) == ReasonDecodeFailed
}

// IsLockConflict checks if an error is a lock conflict
func IsLockConflict(err error) bool {
	return GetReason(err) == ReasonLockConflict
}

// IsWriteProtected checks if an error is a write protection rejection
func IsWriteProtected(err error) bool {
	return GetReason(err) == ReasonWriteProtected
}
