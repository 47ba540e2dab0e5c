package service

// RequestError describes a failed exchange with a remote collaborator:
// either the service answered with a non-success status or the transport
// itself failed. Message is human-readable and safe to show the user;
// when the service supplied an error payload it is passed through
// untouched.
type RequestError struct {
	// Status is the HTTP status code, or 0 when the transport failed
	// before a response arrived.
	Status int

	Message string
}

func (e *RequestError) Error() string { return e.Message }
