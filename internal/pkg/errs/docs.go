// Package errs provides the standardized error types used across the booking service.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing or blank
//   - ValueIsInvalidError: a value is present but not acceptable
//   - ValueIsOutOfRangeError: a value falls outside a closed range
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) for errors.Is checks
//   - A struct type carrying the error details
//   - Constructor functions with and without cause
//   - Error() for the message and Unwrap() returning the sentinel
package errs
