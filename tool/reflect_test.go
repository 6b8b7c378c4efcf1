package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSchema(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))
	return schema
}

func TestSchemaFor(t *testing.T) {
	t.Run("basic types", func(t *testing.T) {
		type args struct {
			Name    string  `json:"name" desc:"The name" required:"true"`
			Count   int     `json:"count"`
			Ratio   float64 `json:"ratio"`
			Enabled bool    `json:"enabled"`
		}

		raw, err := SchemaFor[args]()
		require.NoError(t, err)
		schema := decodeSchema(t, raw)

		assert.Equal(t, "object", schema["type"])
		props := schema["properties"].(map[string]any)

		name := props["name"].(map[string]any)
		assert.Equal(t, "string", name["type"])
		assert.Equal(t, "The name", name["description"])

		assert.Equal(t, "integer", props["count"].(map[string]any)["type"])
		assert.Equal(t, "number", props["ratio"].(map[string]any)["type"])
		assert.Equal(t, "boolean", props["enabled"].(map[string]any)["type"])

		required := schema["required"].([]any)
		assert.Equal(t, []any{"name"}, required)
	})

	t.Run("enum and default tags", func(t *testing.T) {
		type args struct {
			Level string `json:"level" enum:"low,medium,high" default:"medium"`
			Limit int    `json:"limit" default:"10"`
		}

		raw, err := SchemaFor[args]()
		require.NoError(t, err)
		schema := decodeSchema(t, raw)
		props := schema["properties"].(map[string]any)

		level := props["level"].(map[string]any)
		assert.Equal(t, []any{"low", "medium", "high"}, level["enum"])
		assert.Equal(t, "medium", level["default"])

		limit := props["limit"].(map[string]any)
		assert.Equal(t, float64(10), limit["default"])
	})

	t.Run("slices and nested structs", func(t *testing.T) {
		type inner struct {
			Value string `json:"value"`
		}
		type args struct {
			Tags  []string `json:"tags"`
			Inner inner    `json:"inner"`
		}

		raw, err := SchemaFor[args]()
		require.NoError(t, err)
		schema := decodeSchema(t, raw)
		props := schema["properties"].(map[string]any)

		tags := props["tags"].(map[string]any)
		assert.Equal(t, "array", tags["type"])
		assert.Equal(t, "string", tags["items"].(map[string]any)["type"])

		nested := props["inner"].(map[string]any)
		assert.Equal(t, "object", nested["type"])
		assert.Contains(t, nested["properties"], "value")
	})

	t.Run("skipped and unexported fields", func(t *testing.T) {
		type args struct {
			Visible string `json:"visible"`
			Skipped string `json:"-"`
			hidden  string
		}
		_ = args{hidden: ""}

		raw, err := SchemaFor[args]()
		require.NoError(t, err)
		schema := decodeSchema(t, raw)
		props := schema["properties"].(map[string]any)

		assert.Contains(t, props, "visible")
		assert.NotContains(t, props, "Skipped")
		assert.NotContains(t, props, "hidden")
		assert.Len(t, props, 1)
	})

	t.Run("non-struct type rejected", func(t *testing.T) {
		_, err := SchemaFor[string]()
		assert.Error(t, err)
	})

	t.Run("untagged field uses field name", func(t *testing.T) {
		type args struct {
			Plain string
		}
		raw, err := SchemaFor[args]()
		require.NoError(t, err)
		schema := decodeSchema(t, raw)
		assert.Contains(t, schema["properties"], "Plain")
	})
}

func TestMustSchemaFor(t *testing.T) {
	assert.Panics(t, func() {
		MustSchemaFor[int]()
	})

	type ok struct {
		A string `json:"a"`
	}
	assert.NotPanics(t, func() {
		MustSchemaFor[ok]()
	})
}
