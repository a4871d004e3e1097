// Package errors provides structured error handling for the build codecs.
//
// Every failure in the codec packages is an *Error carrying a Code from a
// closed set. Callers branch on the code, never on message text:
//
//	decoded, err := codec.Decode(input)
//	if errors.IsEmptyTemplate(err) {
//	    // prompt the user for a code
//	}
//
// Creating errors:
//
//	err := errors.InvalidEncoding("character outside template alphabet")
//	err := errors.TemplateTooLongf("code is %d characters", n)
//
// Adding metadata:
//
//	err := errors.MalformedTemplate("profession id out of range").
//	    WithMeta("profession_id", id)
//
// Wrapping errors preserves the original code so checks keep working
// through layers:
//
//	if err := codec.Decode(code); err != nil {
//	    return errors.Wrap(err, "failed to expand bar")
//	}
//
// ValidationBuilder accumulates field-level problems (used by component
// Config.Validate methods) and folds them into one InvalidArgument error.
package errors
