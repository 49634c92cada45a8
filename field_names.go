package web_serializers

import (
	"reflect"
	"strings"
	"unicode"
)

// ResponseTag returns the name a struct field will be keyed by in a
// response - the "response" tag's value if it exists, or the "db"
// tag's value if it exists, or just the lowercase field name.  A
// value of "-" means the field is skipped.
func ResponseTag(field reflect.StructField) string {
	var name string
	if name = field.Tag.Get("response"); name != "" {
		return name
	}
	if field.Name != "Id" {
		if name = field.Tag.Get("db"); name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(field.Name)
}

// DeclaredFields returns the declared response field names of an
// entity type, in declaration order, embedded structs included.
// Skipped fields (tagged "-") and unexported fields are left out.
// This is the key set a default response for the entity will carry.
func DeclaredFields(entity interface{}) []string {
	entityType := reflect.TypeOf(entity)
	if entityType.Kind() == reflect.Ptr {
		entityType = entityType.Elem()
	}
	if entityType.Kind() != reflect.Struct {
		return nil
	}
	return declaredFields(entityType, nil)
}

func declaredFields(structType reflect.Type, names []string) []string {
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Anonymous {
			embeddedType := field.Type
			if embeddedType.Kind() == reflect.Ptr {
				embeddedType = embeddedType.Elem()
			}
			if embeddedType.Kind() == reflect.Struct {
				names = declaredFields(embeddedType, names)
			}
			continue
		}
		if !unicode.IsUpper(rune(field.Name[0])) {
			continue
		}
		if name := ResponseTag(field); name != "-" {
			names = append(names, name)
		}
	}
	return names
}
