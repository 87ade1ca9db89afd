package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longkey1/notiongo/notion"
)

func TestParseFilterShorthand(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{
			"Status:select:equals:Done",
			`{"property":"Status","select":{"equals":"Done"}}`,
		},
		{
			"Estimate:number:greater_than:3",
			`{"property":"Estimate","number":{"greater_than":3}}`,
		},
		{
			"Done:checkbox:equals:false",
			`{"property":"Done","checkbox":{"equals":false}}`,
		},
		{
			"Name:title:contains:weekly",
			`{"property":"Name","title":{"contains":"weekly"}}`,
		},
		{
			"Tags:multi_select:contains:infra",
			`{"property":"Tags","multi_select":{"contains":"infra"}}`,
		},
		{
			"Due:date:past_week",
			`{"property":"Due","date":{"past_week":{}}}`,
		},
		{
			"Due:date:on_or_after:2026-01-01",
			`{"property":"Due","date":{"on_or_after":"2026-01-01"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			filter, err := parseFilter(tt.spec)
			require.NoError(t, err)

			data, err := json.Marshal(filter)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestParseFilterErrors(t *testing.T) {
	_, err := parseFilter("just-a-property")
	assert.Error(t, err)

	_, err = parseFilter("Field:rollup:equals:x")
	assert.Error(t, err)

	_, err = parseFilter("Estimate:number:equals:not-a-number")
	assert.Error(t, err)

	_, err = parseFilter("Name:title:sounds_like:x")
	assert.Error(t, err)
}

func TestParseFiltersCombineWithAnd(t *testing.T) {
	filter, err := parseFilters([]string{
		"Status:select:equals:Done",
		"Estimate:number:less_than:5",
	})
	require.NoError(t, err)
	require.NotNil(t, filter)

	data, err := json.Marshal(filter)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"and": [
			{"property": "Status", "select": {"equals": "Done"}},
			{"property": "Estimate", "number": {"less_than": 5}}
		]
	}`, string(data))
}

func TestParseFiltersSingleStaysFlat(t *testing.T) {
	filter, err := parseFilters([]string{"Status:select:equals:Done"})
	require.NoError(t, err)
	require.NotNil(t, filter)
	assert.Empty(t, filter.And)
	assert.Equal(t, "Status", filter.Property)
}

func TestParseFiltersEmpty(t *testing.T) {
	filter, err := parseFilters(nil)
	require.NoError(t, err)
	assert.Nil(t, filter)
}

func TestParseSort(t *testing.T) {
	sort, err := parseSort("Due:descending")
	require.NoError(t, err)
	assert.Equal(t, notion.Sort{Property: "Due", Direction: notion.SortDescending}, sort)

	// Direction defaults to ascending.
	sort, err = parseSort("Due")
	require.NoError(t, err)
	assert.Equal(t, notion.SortAscending, sort.Direction)

	_, err = parseSort("Due:sideways")
	assert.Error(t, err)
}
