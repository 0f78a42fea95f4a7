// Package errors provides the structured error type used across glamour-api.
//
// Errors carry a Code (mapped to gRPC status codes), an optional domain
// Reason, a user-facing message, an optional cause and metadata.
//
// # Basic Usage
//
//	err := errors.NotFoundf("design %s not found", id)
//	err := errors.LockConflict("head").WithMeta("actor", actor.String())
//
// Wrapping keeps the code and reason of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load design")
//	}
//
// # Domain Reasons
//
// The appearance engine reports four failure kinds, all local and recoverable:
//   - ActorUnavailable: a snapshot could not be read (Unavailable)
//   - RestrictedGear: an item is illegal for the actor's race/gender (FailedPrecondition)
//   - DecodeFailed: a serialized state is malformed or from an unknown version (InvalidArgument)
//   - LockConflict: a fixed field was mutated without the force path (Aborted)
//
// errors.Is matches on code, and also on reason when the target has one.
//
// # gRPC Integration
//
// Handlers return errors.ToGRPCError(err). Reason and metadata travel as a
// structpb.Struct status detail and are restored by FromGRPCError.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
