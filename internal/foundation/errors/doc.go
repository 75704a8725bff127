// Package errors provides the classified error type used across docnav.
//
// A ClassifiedError carries a category, a severity and structured context.
// The CLI adapter turns categories into process exit codes and decides how
// much of an error a user sees.
//
//	err := errors.WrapError(ioErr, errors.CategoryFileSystem, "write directory index").
//		WithContext("path", "guide/_index.md").
//		Build()
package errors
