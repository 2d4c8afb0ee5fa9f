// Package errs provides standardized error kinds for the ski-service backend.
// Every layer reports failures through these types so that the HTTP adapter can map
// them to a status code without inspecting message text.
//
// The package includes:
//   - ObjectNotFoundError: the addressed record does not exist
//   - ObjectAlreadyExistsError: a uniqueness rule would be violated (e.g. username)
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - UnauthorizedError: bad credentials, locked account, missing or invalid token
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on the kind
//
// Anything that does not unwrap to one of the sentinels is treated as an internal failure.
package errs
