package quiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want Scope
	}{
		{name: "null", raw: `null`, want: AnyCategory()},
		{name: "empty", raw: ``, want: AnyCategory()},
		{name: "zero", raw: `0`, want: AnyCategory()},
		{name: "number", raw: `4`, want: ForCategory(4)},
		{name: "object with number id", raw: `{"type": "History", "id": 4}`, want: ForCategory(4)},
		{name: "object with string id", raw: `{"type": "Art", "id": "2"}`, want: ForCategory(2)},
		{name: "object with zero id", raw: `{"type": "click", "id": 0}`, want: AnyCategory()},
		{name: "object without id", raw: `{"type": "Art"}`, want: NoEligibleCategory()},
		{name: "negative", raw: `-3`, want: NoEligibleCategory()},
		{name: "fraction", raw: `2.5`, want: NoEligibleCategory()},
		{name: "word", raw: `"science"`, want: NoEligibleCategory()},
		{name: "boolean", raw: `true`, want: NoEligibleCategory()},
		{name: "array", raw: `[1]`, want: NoEligibleCategory()},
		{name: "broken object", raw: `{"id": `, want: NoEligibleCategory()},
		{name: "object with null id", raw: `{"type": "Art", "id": null}`, want: NoEligibleCategory()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseScope(json.RawMessage(tc.raw)))
		})
	}
}

func TestScopeAccessors(t *testing.T) {
	t.Parallel()

	var zero Scope
	assert.True(t, zero.IsAny())
	assert.Equal(t, "any", zero.String())

	s := ForCategory(6)
	id, ok := s.CategoryID()
	assert.True(t, ok)
	assert.Equal(t, int64(6), id)
	assert.Equal(t, "category:6", s.String())

	none := ForCategory(0)
	assert.True(t, none.IsNone())
	_, ok = none.CategoryID()
	assert.False(t, ok)
	assert.Equal(t, "none", none.String())
}
