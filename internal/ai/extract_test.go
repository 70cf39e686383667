// internal/ai/extract_test.go
package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstJSONObject(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		out, err := FirstJSONObject(`{"name":"Tiger Revo"}`)
		assert.NoError(t, err)
		assert.Equal(t, `{"name":"Tiger Revo"}`, out)
	})

	t.Run("surrounded by prose", func(t *testing.T) {
		out, err := FirstJSONObject("Here is the data you asked for:\n```json\n{\"year_model\": 2012}\n```\nHope that helps!")
		assert.NoError(t, err)
		assert.Equal(t, `{"year_model": 2012}`, out)
	})

	t.Run("braces inside strings", func(t *testing.T) {
		out, err := FirstJSONObject(`{"desc":"engine uses a {wet} clutch","cc":200}`)
		assert.NoError(t, err)
		assert.Equal(t, `{"desc":"engine uses a {wet} clutch","cc":200}`, out)
	})

	t.Run("escaped quotes inside strings", func(t *testing.T) {
		out, err := FirstJSONObject(`noise {"name":"say \"hi\" {"} trailing`)
		assert.NoError(t, err)
		assert.Equal(t, `{"name":"say \"hi\" {"}`, out)
	})

	t.Run("nested objects", func(t *testing.T) {
		out, err := FirstJSONObject(`{"specs":{"engine":{"cc":155}}}`)
		assert.NoError(t, err)
		assert.Equal(t, `{"specs":{"engine":{"cc":155}}}`, out)
	})

	t.Run("only the first object is returned", func(t *testing.T) {
		out, err := FirstJSONObject(`{"a":1} {"b":2}`)
		assert.NoError(t, err)
		assert.Equal(t, `{"a":1}`, out)
	})

	t.Run("no object at all", func(t *testing.T) {
		_, err := FirstJSONObject("I cannot answer that.")
		assert.ErrorIs(t, err, ErrNoJSONObject)
	})

	t.Run("unbalanced object", func(t *testing.T) {
		_, err := FirstJSONObject(`{"name":"truncated`)
		assert.ErrorIs(t, err, ErrNoJSONObject)
	})
}
