package web_serializers

// A NilResponder is a type that has a special representation in a
// response when a pointer to it is nil.
type NilResponder interface {
	// NilResponseValue should return the value to be used in place
	// of the NilResponder in a response when the pointer to it is
	// nil.
	NilResponseValue() interface{}
}
