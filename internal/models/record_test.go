package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRecordFields(t *testing.T) {
	rec := RawRecord{
		"id":        "42",
		"text":      "hello",
		"count_f":   float64(7),
		"count_i":   3,
		"count_n":   json.Number("11"),
		"not_a_num": "seven",
		"user":      map[string]interface{}{"id": "100"},
	}

	t.Run("StringField", func(t *testing.T) {
		s, ok := rec.StringField("id")
		assert.True(t, ok)
		assert.Equal(t, "42", s)

		_, ok = rec.StringField("missing")
		assert.False(t, ok)

		_, ok = rec.StringField("count_f")
		assert.False(t, ok, "non-string values do not satisfy StringField")
	})

	t.Run("StringOr", func(t *testing.T) {
		assert.Equal(t, "hello", rec.StringOr("text", "fallback"))
		assert.Equal(t, "fallback", rec.StringOr("missing", "fallback"))
	})

	t.Run("IntOr", func(t *testing.T) {
		assert.Equal(t, 7, rec.IntOr("count_f", 0))
		assert.Equal(t, 3, rec.IntOr("count_i", 0))
		assert.Equal(t, 11, rec.IntOr("count_n", 0))
		assert.Equal(t, 9, rec.IntOr("missing", 9))
		assert.Equal(t, 9, rec.IntOr("not_a_num", 9))
	})

	t.Run("Child", func(t *testing.T) {
		child, ok := rec.Child("user")
		require.True(t, ok)
		id, _ := child.StringField("id")
		assert.Equal(t, "100", id)

		_, ok = rec.Child("text")
		assert.False(t, ok)
	})
}

func TestRawRecordSurvivesJSONDecoding(t *testing.T) {
	var rec RawRecord
	err := json.Unmarshal([]byte(`{"id":"1","favorite_count":5,"user":{"id":"100"}}`), &rec)
	require.NoError(t, err)

	assert.Equal(t, 5, rec.IntOr("favorite_count", 0))
	_, ok := rec.Child("user")
	assert.True(t, ok)
}
