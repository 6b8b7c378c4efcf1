package tool

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// SchemaFor generates a JSON Schema for the struct type T using reflection.
// Field tags control the generated schema:
//
//	json:"name"       property name (fields tagged "-" are skipped)
//	desc:"..."        property description
//	required:"true"   include in the required list
//	enum:"a,b,c"      allowed values (string fields)
//	default:"x"       default value, coerced to the field type
//
// Supported field types are strings, booleans, integer and float types,
// slices, maps with string keys, and nested structs.
func SchemaFor[T any]() (json.RawMessage, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return nil, fmt.Errorf("tool: cannot generate schema for nil type")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("tool: schema generation requires a struct type, got %s", t.Kind())
	}

	schema, err := schemaForStruct(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(schema)
}

// MustSchemaFor is like SchemaFor but panics on error.
func MustSchemaFor[T any]() json.RawMessage {
	schema, err := SchemaFor[T]()
	if err != nil {
		panic(err)
	}
	return schema
}

func schemaForStruct(t reflect.Type) (map[string]any, error) {
	properties := make(map[string]any)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		if name == "" {
			continue
		}

		prop, err := schemaForField(field)
		if err != nil {
			return nil, fmt.Errorf("tool: field %s: %w", field.Name, err)
		}
		properties[name] = prop

		if field.Tag.Get("required") == "true" {
			required = append(required, name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema, nil
}

func schemaForField(field reflect.StructField) (map[string]any, error) {
	prop, err := schemaForType(field.Type)
	if err != nil {
		return nil, err
	}

	if desc := field.Tag.Get("desc"); desc != "" {
		prop["description"] = desc
	}

	if enum := field.Tag.Get("enum"); enum != "" {
		values := strings.Split(enum, ",")
		enumValues := make([]any, len(values))
		for i, v := range values {
			enumValues[i] = strings.TrimSpace(v)
		}
		prop["enum"] = enumValues
	}

	if def := field.Tag.Get("default"); def != "" {
		v, err := coerceDefault(def, field.Type)
		if err != nil {
			return nil, err
		}
		prop["default"] = v
	}

	return prop, nil
}

func schemaForType(t reflect.Type) (map[string]any, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return map[string]any{"type": "string"}, nil
	case reflect.Bool:
		return map[string]any{"type": "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}, nil
	case reflect.Slice, reflect.Array:
		items, err := schemaForType(t.Elem())
		if err != nil {
			return nil, err
		}
		return map[string]any{"type": "array", "items": items}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type %s", t.Key().Kind())
		}
		return map[string]any{"type": "object"}, nil
	case reflect.Struct:
		return schemaForStruct(t)
	default:
		return nil, fmt.Errorf("unsupported type %s", t.Kind())
	}
}

func coerceDefault(value string, t reflect.Type) (any, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Bool:
		return strconv.ParseBool(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.Atoi(value)
	case reflect.Float32, reflect.Float64:
		return strconv.ParseFloat(value, 64)
	default:
		return nil, fmt.Errorf("default tag unsupported for type %s", t.Kind())
	}
}

func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
