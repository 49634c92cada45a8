package web_serializers

// An InputValidator is a type that knows how to validate raw input
// values aimed at it, before any conversion is attempted.
type InputValidator interface {

	// ValidateInput should return an error describing what is wrong
	// with the passed in input value, or nil if the value is
	// acceptable.
	ValidateInput(value interface{}) error
}
