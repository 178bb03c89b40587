package api

import (
	"errors"
	"fmt"
)

// StatusError is a request the scheduling API rejected with a non-2xx status.
// Message is the server-provided "error" field when the body carried one,
// otherwise a generic status-code message. Transport failures (no response at
// all) are never StatusErrors; they propagate as wrapped *url.Error values.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string { return e.Message }

// genericMessage mirrors the wording clients have displayed historically;
// keep it stable.
func genericMessage(status int) string {
	return fmt.Sprintf("HTTP error, status %d", status)
}

// IsStatus reports whether err is a server rejection with the given status.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}
