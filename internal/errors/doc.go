// Package errors provides the structured error type shared by every layer of
// the bestiary.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata:
//
//	err := errors.NotFoundf("monster %q not found", name).
//	    WithMeta("source", source)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Put(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to seed catalog")
//	}
//
// Callers branch on codes, never on concrete types:
//
//	if errors.IsNotFound(err) {
//	    // suggest alternatives
//	}
//
// # Codes used by the rules engine
//
//   - OutOfRange: a scaling step left its table (damage dice past the top of
//     the progression, a size shift past Fine or Colossal).
//   - FailedPrecondition: a template could not be applied to the current
//     creature, or a lookup was ambiguous without a source.
//   - InvalidArgument: malformed input such as an unknown template name or an
//     invalid creature attribute bag.
//
// Handlers convert errors with ToGRPCError before returning them.
package errors
