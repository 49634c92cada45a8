package web_serializers

// Referencer is a datatype that can stand in for itself as a
// primitive reference (usually its identifier) when it appears as a
// related entity inside another response.
//
// A Referencer field renders as its ReferenceValue until the
// response's expansion depth reaches it, at which point its full
// field mapping is inlined instead.  This keeps default
// representations flat and small in two situations:
//
// 1. You are responding with a list of *many* of the large struct
// type, often as part of a `GET /resource` response.
//
// 2. You are responding with a struct type that includes the large
// struct type as a field, often as part of a `GET /otherresource/id`
// response.
type Referencer interface {

	// ReferenceValue should return the primitive value that will
	// represent the underlying entity when it is not being expanded.
	ReferenceValue() interface{}
}
