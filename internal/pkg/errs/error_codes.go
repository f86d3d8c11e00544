/*
Package errs provides custom error types and application-level error code constants.

These error codes identify the business and system errors shown to visitors of the site.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrFormParseFailed indicates failure to parse the URL-encoded form body.
	ErrFormParseFailed = 1005

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: Registration and Login Errors
const (
	// ErrDuplicateEmail indicates a registration with an email that is already on file.
	ErrDuplicateEmail = 2001

	// ErrMissingFields indicates the submitted form left the required fields empty.
	ErrMissingFields = 2002

	// ErrPasswordTooShort indicates a registration password under the minimum length.
	ErrPasswordTooShort = 2003

	// ErrUserNotFound indicates a login with an email that is not on file.
	ErrUserNotFound = 2004

	// ErrWrongPassword indicates the password did not match the stored hash.
	ErrWrongPassword = 2005
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
