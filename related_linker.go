package web_serializers

// A RelatedLinker returns links to values related to itself.
type RelatedLinker interface {

	// RelatedLinks should return a map of rel:link key:value pairs
	// which will be added to the Link header.
	RelatedLinks() map[string]string
}
