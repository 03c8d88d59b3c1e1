package subscriptions

// PersistenceError wraps a store failure returned by a Repository.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persist subscriber: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
