package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
// Form validation errors keep the zero Status, which NewError turns into 200:
// the form is re-rendered with the message rather than failing the request.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrFormParseFailed:       {Code: ErrFormParseFailed, Message: "Failed to process the submitted form."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Registration and Login Errors
	ErrDuplicateEmail:   {Code: ErrDuplicateEmail, Message: "A user with this email already exists."},
	ErrMissingFields:    {Code: ErrMissingFields, Message: "Please fill in all fields."},
	ErrPasswordTooShort: {Code: ErrPasswordTooShort, Message: "Password must be at least %d characters long."},
	ErrUserNotFound:     {Code: ErrUserNotFound, Message: "No user with this email exists."},
	ErrWrongPassword:    {Code: ErrWrongPassword, Message: "Incorrect password."},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
