package web_serializers

import (
	"github.com/stretchr/objx"
)

// FieldSelection carries the field directives parsed from a single
// request, and is used to shape that request's response.  The zero
// value asks for the default representation: every declared field,
// related entities collapsed to their reference values.
//
// Fields and Exclude are presence-based directives: a nil or empty
// slice means "not requested," never "keep nothing."  Callers that
// want to distinguish "not requested" from "requested empty" should
// do so before constructing a FieldSelection, because an empty slice
// is indistinguishable from an absent one here.
type FieldSelection struct {

	// Fields is the allow-list of field names to keep.  Names that
	// don't exist on the record are ignored; nothing is fabricated.
	Fields []string

	// Exclude is the deny-list of field names to drop.  It is applied
	// after Fields, so a name present in both is dropped.
	Exclude []string

	// Nest requests one level of related-entity expansion.
	Nest bool
}

// ParseFieldSelection reads the "fields", "exclude" and "nest"
// parameters out of a parameter map, as produced by
// ctx.QueryParams() or web_request_readers.ParseParams.
//
// The fields and exclude parameters are repeatable; a single value,
// a []string, and a []interface{} of strings are all accepted, since
// different parsers hand us different shapes for repeated
// parameters.
//
// nest is a presence flag, not a boolean-valued field: any present,
// non-empty value turns nesting on - including the literal string
// "False", which is what a query string will contain if a client
// sends ?nest=False.  An absent or empty value turns it off.
func ParseFieldSelection(params objx.Map) FieldSelection {
	selection := FieldSelection{
		Fields:  collectNames(params, "fields"),
		Exclude: collectNames(params, "exclude"),
	}
	if params.Has("nest") {
		switch nest := params.Get("nest").Data().(type) {
		case string:
			selection.Nest = nest != ""
		case []string:
			selection.Nest = len(nest) > 0 && nest[0] != ""
		case nil:
		default:
			selection.Nest = true
		}
	}
	return selection
}

// collectNames gathers the values of a repeatable parameter into a
// slice of names, returning nil when the parameter is absent or
// collects to nothing.
func collectNames(params objx.Map, key string) []string {
	if !params.Has(key) {
		return nil
	}
	var names []string
	switch value := params.Get(key).Data().(type) {
	case string:
		if value != "" {
			names = append(names, value)
		}
	case []string:
		for _, name := range value {
			if name != "" {
				names = append(names, name)
			}
		}
	case []interface{}:
		for _, element := range value {
			if name, ok := element.(string); ok && name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// Depth returns the related-entity expansion depth requested by the
// selection.  The depth is threaded explicitly through response
// construction for each invocation, so two requests for the same
// entity type with different nest directives never observe each
// other's depth.
func (selection FieldSelection) Depth() int {
	if selection.Nest {
		return 1
	}
	return 0
}

// Apply narrows record to the fields requested by the selection and
// returns the result.  The keep-set is computed up front - the
// intersection with Fields when Fields is present, minus everything
// in Exclude - and the output map is then built from it, rather than
// deleting keys from a live map.
//
// Names in either directive that don't exist on the record are
// silently ignored, and a record is never widened: Apply only ever
// removes fields.  With neither directive present the record is
// returned as-is.
func (selection FieldSelection) Apply(record objx.Map) objx.Map {
	if len(selection.Fields) == 0 && len(selection.Exclude) == 0 {
		return record
	}

	keep := make(map[string]bool, len(record))
	if len(selection.Fields) > 0 {
		for _, name := range selection.Fields {
			if _, present := record[name]; present {
				keep[name] = true
			}
		}
	} else {
		for name := range record {
			keep[name] = true
		}
	}
	for _, name := range selection.Exclude {
		delete(keep, name)
	}

	response := make(objx.Map, len(keep))
	for name, value := range record {
		if keep[name] {
			response[name] = value
		}
	}
	return response
}
