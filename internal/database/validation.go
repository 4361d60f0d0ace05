package database

// ValidationError reports a rejected field on a write operation.
// The message is safe to surface to the client.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
