package access

// AccessError is the only error kind surfaced for a denied check. The same
// message is used whether the stream does not exist or exists but is not
// accessible, so unauthorized callers cannot probe for private streams.
type AccessError struct {
	Message string
}

func (e *AccessError) Error() string {
	return e.Message
}

func denied(message string) error {
	return &AccessError{Message: message}
}
