package alexa

import "fmt"

// DeserializationError reports a request that could not be parsed:
// malformed JSON, or a required field missing. Path points at the
// offending location in the document ("$" for the document itself).
type DeserializationError struct {
	Path string
	Err  error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("alexa: cannot deserialize request at %s: %v", e.Path, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// InvalidDirectiveError reports a directive constructed with a
// semantically invalid payload, e.g. a Play directive with an empty
// stream URL. It is returned by the directive constructors, never
// deferred to serialization time.
type InvalidDirectiveError struct {
	Type   string
	Reason string
}

func (e *InvalidDirectiveError) Error() string {
	return fmt.Sprintf("alexa: invalid %s directive: %s", e.Type, e.Reason)
}
