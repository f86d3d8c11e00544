/*
Package req provides helper functions for HTTP request parsing.

It parses URL-encoded form submissions under a size limit and maps parse failures
to application error codes.
*/
package req

import (
	"errors"
	"net/http"

	"authsite/internal/pkg/errs"
)

// MaxFormSize is the maximum accepted size of a form request body (1 MB).
const MaxFormSize int64 = 1 << 20

// ParseForm parses the URL-encoded body of r into r.PostForm, reading at most MaxFormSize bytes.
func ParseForm(w http.ResponseWriter, r *http.Request) *errs.CustomError {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFormSize)

	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return errs.NewError(errs.ErrFormParseFailed)
	}

	return nil
}

// PostValues returns the posted value of each key in order. Missing keys yield "".
func PostValues(r *http.Request, keys ...string) []string {
	values := make([]string, len(keys))
	for i, key := range keys {
		values[i] = r.PostForm.Get(key)
	}
	return values
}
