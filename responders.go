// Package web_serializers builds the response payloads for our REST
// APIs, shaping each one according to the field directives sent with
// the request, and provides helpers for parsing input parameters.
package web_serializers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/Radiobox/web_request_readers"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/goweb"
	"github.com/stretchr/goweb/context"
	"github.com/stretchr/objx"
)

// database/sql has nullable values which all have the same prefix.
const SqlNullablePrefix = "Null"

var validate = validator.New()

// CreateResponse takes a value to be used as a response and generates
// the value to respond with, based on struct tag and interface
// matching, narrowed to the fields requested by the selection.
//
// Values which implement LazyLoader will have their LazyLoad method
// run first, in order to load any values that haven't been loaded
// yet.  When the selection requests nesting, values which implement
// Expander are given a chance to populate their related entities
// before the walk.
//
// Struct values are converted to an objx.Map, one entry per exported
// field, keyed by ResponseTag.  Related entities - fields whose types
// implement Referencer - are rendered as their reference value until
// the remaining expansion depth reaches them, at which point their
// own field mapping is inlined instead.  The depth is a plain
// parameter of this walk, owned by the single invocation; nothing
// about the entity type is mutated to track it.
//
// The selection's field directives apply to the top-level record
// only (and to each element of a top-level collection); nested
// mappings are shaped solely by the expansion depth.
func CreateResponse(data interface{}, selection FieldSelection, domain ...string) interface{} {
	if err, ok := data.(error); ok {
		return err.Error()
	}
	var linkDomain string
	if len(domain) > 0 {
		linkDomain = domain[0]
	}
	return createResponse(data, selection, selection.Depth(), false, linkDomain)
}

func createResponse(data interface{}, selection FieldSelection, depth int, isSubResponse bool, domain string) interface{} {

	if lazyLoader, ok := data.(LazyLoader); ok {
		lazyLoader.LazyLoad(selection)
	}
	if depth > 0 {
		if expander, ok := data.(Expander); ok {
			expander.Expand(depth)
		}
	}

	responseData := data
	if converter, ok := data.(ResponseConverter); ok {
		responseData = converter.ResponseData()
	}

	value := reflect.ValueOf(responseData)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	switch value.Kind() {
	case reflect.Struct:
		// Support "database/sql".Null* types, and any other types
		// matching that structure, at the top level too.
		if nullable, err := createNullableDbResponse(value, value.Type()); err == nil {
			return nullable
		}
		record := createStructResponse(value, depth, domain)
		if !isSubResponse {
			return selection.Apply(record)
		}
		return record
	case reflect.Slice, reflect.Array:
		return createSliceResponse(value, selection, depth, isSubResponse, domain)
	case reflect.Map:
		record := createMapResponse(value, depth, domain)
		if !isSubResponse {
			return selection.Apply(record)
		}
		return record
	case reflect.String:
		str := value.String()
		if domain != "" && str != "" && str[0] == '/' {
			// Prepend the domain to all links.
			str = domain + str
		}
		return str
	default:
		return responseData
	}
}

// createNullableDbResponse checks for "database/sql".Null* types, or
// anything with a similar structure, and pulls out the underlying
// value.  For example:
//
//	type NullInt struct {
//	    Int int
//	    Valid bool
//	}
//
// If Valid is false, this function will return nil; otherwise, it
// will return the value of the Int field.
func createNullableDbResponse(value reflect.Value, valueType reflect.Type) (interface{}, error) {
	typeName := valueType.Name()
	if strings.HasPrefix(typeName, SqlNullablePrefix) {
		fieldName := typeName[len(SqlNullablePrefix):]
		val := value.FieldByName(fieldName)
		isNotNil := value.FieldByName("Valid")
		if val.IsValid() && isNotNil.IsValid() {
			// We've found a nullable type
			if isNotNil.Interface().(bool) {
				return val.Interface(), nil
			}
			return nil, nil
		}
	}
	return nil, errors.New("No Nullable DB value found")
}

// createMapResponse is a helper for generating a response value from
// a value of type map.
func createMapResponse(value reflect.Value, depth int, domain string) objx.Map {
	response := make(objx.Map, value.Len())
	for _, key := range value.MapKeys() {
		keyStr, ok := key.Interface().(string)
		if !ok {
			keyStr = fmt.Sprint(key.Interface())
		}
		response[keyStr] = createResponseValue(value.MapIndex(key), depth, domain)
	}
	return response
}

// createSliceResponse is a helper for generating a response value
// from a value of type slice.  Elements of a top-level collection
// response are built as full records, with the selection applied to
// each one; slices reached inside a record follow sub-element rules,
// so their related-entity members collapse with the remaining depth.
func createSliceResponse(value reflect.Value, selection FieldSelection, depth int, isSubResponse bool, domain string) interface{} {
	response := make([]interface{}, 0, value.Len())
	for i := 0; i < value.Len(); i++ {
		element := value.Index(i)
		if isSubResponse {
			response = append(response, createResponseValue(element, depth, domain))
			continue
		}
		elementData := element.Interface()
		if converter, ok := elementData.(CollectionResponseConverter); ok {
			elementData = converter.CollectionResponse()
		}
		response = append(response, createResponse(elementData, selection, depth, false, domain))
	}
	return response
}

// createStructResponse is a helper for generating a response value
// from a value of type struct.
func createStructResponse(value reflect.Value, depth int, domain string) objx.Map {
	structType := value.Type()

	response := make(objx.Map)

	for i := 0; i < value.NumField(); i++ {
		fieldType := structType.Field(i)
		fieldValue := value.Field(i)

		if fieldType.Anonymous {
			embedded := createResponse(fieldValue.Interface(), FieldSelection{}, depth, true, domain)
			if embeddedResponse, ok := embedded.(objx.Map); ok {
				for key, embeddedValue := range embeddedResponse {
					// Don't overwrite values from the base struct
					if _, ok := response[key]; !ok {
						response[key] = embeddedValue
					}
				}
			}
		} else if unicode.IsUpper(rune(fieldType.Name[0])) {
			name := ResponseTag(fieldType)
			if name == "-" {
				continue
			}
			response[name] = createResponseValue(fieldValue, depth, domain)
		}
	}
	return response
}

// createResponseValue is a helper for generating a response value for
// a single value in a response object.
//
// This is where related entities collapse or expand: a Referencer is
// rendered as its reference value once the remaining depth is spent,
// and as its own record (with one less level remaining) otherwise.
func createResponseValue(value reflect.Value, depth int, domain string) interface{} {
	if value.Kind() == reflect.Ptr && !value.Elem().IsValid() {
		if nilResponder, ok := value.Interface().(NilResponder); ok {
			return nilResponder.NilResponseValue()
		}
		return nil
	}

	if value.Kind() == reflect.Struct {
		// Support "database/sql".Null* types, and any other types
		// matching that structure.
		if nullable, err := createNullableDbResponse(value, value.Type()); err == nil {
			return nullable
		}
	}

	switch source := value.Interface().(type) {
	case Referencer:
		if depth <= 0 {
			return createResponse(source.ReferenceValue(), FieldSelection{}, 0, true, domain)
		}
		return createResponse(value.Interface(), FieldSelection{}, depth-1, true, domain)
	case fmt.Stringer:
		return createResponse(source.String(), FieldSelection{}, depth, true, domain)
	case error:
		return createResponse(source.Error(), FieldSelection{}, depth, true, domain)
	default:
		return createResponse(value.Interface(), FieldSelection{}, depth, true, domain)
	}
}

// RespondWithInputErrors attempts to figure out where the input
// values (in ctx) may have caused problems when being set to fields
// on data, and then add them to the input errors on the notifications
// map.
//
// For each field in data, if the field is an InputValidator,
// the input checking logic will just be handed off to its
// ValidateInput method; if the field is a RequestValueReceiver, the
// error value returned from Receive will be used to validate;
// otherwise, we will attempt to check that the input value is
// assignable to the field.  On top of the per-field checks, any
// "validate" struct tags on data are run through the validator
// package, and their failures are added to the input messages too.
//
// If checkMissing is true, required fields that have no value present in
// the input parameters will be considered input errors and will be
// added to the message map.
func RespondWithInputErrors(ctx context.Context, notifications MessageMap, data interface{}, checkMissing bool) error {
	dataType := reflect.TypeOf(data)
	if dataType.Kind() == reflect.Ptr {
		dataType = dataType.Elem()
	}
	params, err := web_request_readers.ParseParams(ctx)
	if err != nil {
		return err
	}
	params = params.Copy()
	addInputErrors(dataType, params, notifications, checkMissing)
	addValidationErrors(data, notifications)

	// addInputErrors will delete all params that it has checked for
	// input errors, so anything remaining in params has no matching
	// field.
	for key := range params {
		notifications.SetInputMessage(key, "No target field found for this input")
	}
	status := http.StatusBadRequest
	if len(notifications.InputMessages()) == 0 {
		// There were no errors from the input, but something still
		// went wrong - this is probably an internal server error.
		status = http.StatusInternalServerError
	}
	return Respond(ctx, status, notifications, notifications)
}

func checkForInputError(fieldType reflect.Type, value interface{}) error {

	// We always want to check the pointer to the value (and never the
	// pointer to the pointer to the value) for interface matching.
	var emptyValue reflect.Value
	if fieldType.Kind() == reflect.Ptr {
		emptyValue = reflect.New(fieldType.Elem())
	} else {
		emptyValue = reflect.New(fieldType)
	}

	// A type switch would look cleaner here, but we want a very
	// specific order of preference for these interfaces.  A type
	// switch does not guarantee any preferred order, just that
	// one valid case will be executed.
	emptyInter := emptyValue.Interface()
	if fieldValidator, ok := emptyInter.(InputValidator); ok {
		return fieldValidator.ValidateInput(value)
	}
	if receiver, ok := emptyInter.(web_request_readers.RequestValueReceiver); ok {
		return receiver.Receive(value)
	}

	fieldTypeName := fieldType.Name()
	if fieldType.Kind() == reflect.Struct && strings.HasPrefix(fieldTypeName, SqlNullablePrefix) {
		// database/sql defines many Null* types,
		// where the fields are Valid (a bool) and the
		// name of the type (everything after Null).
		// We're trying to support them (somewhat)
		// here.
		typeName := fieldTypeName[len(SqlNullablePrefix):]
		nullField, ok := fieldType.FieldByName(typeName)
		if ok {
			// This is almost definitely an sql.Null* type.
			if value == nil {
				return nil
			}
			fieldType = nullField.Type
		}
	}
	if value == nil {
		// json bodies can carry explicit nulls, and reflect.TypeOf
		// has no type to report for them.  nil is fine for pointer
		// fields and an input error for everything else.
		if fieldType.Kind() == reflect.Ptr {
			return nil
		}
		return errors.New("No input provided for this field")
	}
	if !reflect.TypeOf(value).ConvertibleTo(fieldType) {
		return errors.New("Input is of the wrong type and cannot be converted")
	}
	return nil
}

// IsValid reports whether data passes its "validate" struct tags.
// Non-struct values are trivially valid.
func IsValid(data interface{}) bool {
	dataValue := reflect.ValueOf(data)
	if dataValue.Kind() == reflect.Ptr {
		dataValue = dataValue.Elem()
	}
	if dataValue.Kind() != reflect.Struct {
		return true
	}
	return validate.Struct(data) == nil
}

// addValidationErrors runs data through its "validate" struct tags
// and records each failing field in the notifications map, keyed by
// the field's response name.
func addValidationErrors(data interface{}, notifications MessageMap) {
	dataValue := reflect.ValueOf(data)
	if dataValue.Kind() == reflect.Ptr {
		dataValue = dataValue.Elem()
	}
	if dataValue.Kind() != reflect.Struct {
		return
	}
	err := validate.Struct(data)
	if err == nil {
		return
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return
	}
	dataType := dataValue.Type()
	for _, fieldError := range fieldErrors {
		name := strings.ToLower(fieldError.Field())
		if field, ok := dataType.FieldByName(fieldError.Field()); ok {
			name = ResponseTag(field)
		}
		notifications.SetInputMessage(name, "Failed validation:", fieldError.Tag())
	}
}

// addInputErrors walks through the fields of dataType, checking the
// matching input parameter (if any) against each one.
func addInputErrors(dataType reflect.Type, params objx.Map, notifications MessageMap, checkMissing bool) {
	for i := 0; i < dataType.NumField(); i++ {
		field := dataType.Field(i)
		if field.Anonymous {
			addInputErrors(field.Type, params, notifications, checkMissing)
			continue
		}

		if unicode.IsUpper(rune(field.Name[0])) {
			name, args := web_request_readers.NameAndArgs(field)
			if name == "-" {
				continue
			}

			optional := false
			for _, arg := range args {
				if arg == "optional" {
					optional = true
				}
			}

			value, ok := params[name]
			if !ok {
				if !optional && checkMissing {
					notifications.SetInputMessage(name, "No input for required field")
				}
				continue
			}

			// We're now at the point where we know this parameter has a
			// target field and will be checked, so remove it from the
			// map.
			delete(params, name)

			if err := checkForInputError(field.Type, value); err != nil {
				notifications.SetInputMessage(name, err.Error())
			}
		}
	}
}

// Respond performs an API response, shaping the response data from
// the request's field directives and adding some additional data to
// the context's CodecOptions to support our custom codecs.  This
// particular function is very specifically for use with the
// github.com/stretchr/goweb web framework.
//
// The fields, exclude and nest query parameters are parsed here, and
// the resulting FieldSelection is handed to CreateResponse, which
// threads the requested expansion depth through construction of this
// one response.
func Respond(ctx context.Context, status int, notifications MessageMap, data interface{}, useFullDomain ...bool) error {
	body, err := web_request_readers.ParseBody(ctx)
	if err != nil {
		return err
	}
	selection := ParseFieldSelection(ctx.QueryParams())

	protocol := "http"
	if ctx.HttpRequest().TLS != nil {
		protocol += "s"
	}

	host := ctx.HttpRequest().Host

	requestDomain := fmt.Sprintf("%s://%s", protocol, host)
	if status == http.StatusOK {
		location := "Error: no location present"
		if locationer, ok := data.(Locationer); ok {
			location = fmt.Sprintf("%s%s", requestDomain, locationer.Location())
		}
		ctx.HttpResponseWriter().Header().Set("Location", location)

		if linker, ok := data.(RelatedLinker); ok {
			linkMap := linker.RelatedLinks()
			links := make([]string, 0, len(linkMap)+1)
			links = append(links, fmt.Sprintf(`<%s>; rel="location"`, location))
			for rel, link := range linkMap {
				link := fmt.Sprintf(`<%s%s>; rel="%s"`, requestDomain, link, rel)
				links = append(links, link)
			}
			ctx.HttpResponseWriter().Header().Set("Link", strings.Join(links, ", "))
		}
	}
	// Don't pass the domain to the response builder unless it's
	// requested in the responder.
	if len(useFullDomain) == 0 || useFullDomain[0] == false {
		requestDomain = ""
	}

	options := ctx.CodecOptions()
	options.MergeHere(objx.Map{
		"status":        status,
		"input_params":  body,
		"notifications": notifications,
		"domain":        requestDomain,
	})

	return goweb.API.WriteResponseObject(ctx, status, CreateResponse(data, selection, requestDomain))
}
