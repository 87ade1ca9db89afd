package notion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterLeafJSON(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{
			name:   "title equals",
			filter: Title("Name").Equals("Weekly notes"),
			want:   `{"property":"Name","title":{"equals":"Weekly notes"}}`,
		},
		{
			name:   "rich text contains",
			filter: RichTextProp("Summary").Contains("urgent"),
			want:   `{"property":"Summary","rich_text":{"contains":"urgent"}}`,
		},
		{
			name:   "number greater than",
			filter: Number("Estimate").GreaterThan(3),
			want:   `{"property":"Estimate","number":{"greater_than":3}}`,
		},
		{
			name:   "checkbox equals false",
			filter: Checkbox("Done").Equals(false),
			want:   `{"property":"Done","checkbox":{"equals":false}}`,
		},
		{
			name:   "select equals",
			filter: Select("Status").Equals("In progress"),
			want:   `{"property":"Status","select":{"equals":"In progress"}}`,
		},
		{
			name:   "multi select contains",
			filter: MultiSelect("Tags").Contains("infra"),
			want:   `{"property":"Tags","multi_select":{"contains":"infra"}}`,
		},
		{
			name:   "date on or after",
			filter: DateProp("Due").OnOrAfter("2026-01-01"),
			want:   `{"property":"Due","date":{"on_or_after":"2026-01-01"}}`,
		},
		{
			name:   "date past week",
			filter: DateProp("Due").PastWeek(),
			want:   `{"property":"Due","date":{"past_week":{}}}`,
		},
		{
			name:   "title is empty",
			filter: Title("Name").IsEmpty(),
			want:   `{"property":"Name","title":{"is_empty":true}}`,
		},
		{
			name:   "files is not empty",
			filter: Files("Attachments").IsNotEmpty(),
			want:   `{"property":"Attachments","files":{"is_not_empty":true}}`,
		},
		{
			name:   "created time after",
			filter: CreatedTime().After("2026-01-01T00:00:00Z"),
			want:   `{"timestamp":"created_time","created_time":{"after":"2026-01-01T00:00:00Z"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.filter)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestFilterNestedCombinators(t *testing.T) {
	filter := And(
		Select("Status").Equals("Done"),
		Or(
			Number("Estimate").LessThan(5),
			Checkbox("Urgent").Equals(true),
		),
	)

	data, err := json.Marshal(filter)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"and": [
			{"property": "Status", "select": {"equals": "Done"}},
			{"or": [
				{"property": "Estimate", "number": {"less_than": 5}},
				{"property": "Urgent", "checkbox": {"equals": true}}
			]}
		]
	}`, string(data))
}

func TestFilterDateInputForms(t *testing.T) {
	at := time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC)

	fromTime := DateProp("Due").Before(at)
	require.NotNil(t, fromTime.Date.Before)
	assert.Equal(t, "2026-08-26T10:30:00Z", *fromTime.Date.Before)

	fromDate := DateProp("Due").Before(NewDate(at))
	require.NotNil(t, fromDate.Date.Before)
	assert.Equal(t, "2026-08-26", *fromDate.Date.Before)

	fromString := DateProp("Due").Before("2026-08-26")
	require.NotNil(t, fromString.Date.Before)
	assert.Equal(t, "2026-08-26", *fromString.Date.Before)
}

func TestFilterBuildersDoNotShareState(t *testing.T) {
	due := DateProp("Due")
	a := due.IsEmpty()
	b := due.IsNotEmpty()

	assert.True(t, a.Date.IsEmpty)
	assert.False(t, a.Date.IsNotEmpty)
	assert.True(t, b.Date.IsNotEmpty)
	assert.False(t, b.Date.IsEmpty)
}

func TestSortJSON(t *testing.T) {
	sorts := []Sort{
		SortBy("Due", SortAscending),
		SortByLastEditedTime(SortDescending),
	}

	data, err := json.Marshal(sorts)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"property": "Due", "direction": "ascending"},
		{"timestamp": "last_edited_time", "direction": "descending"}
	]`, string(data))
}
