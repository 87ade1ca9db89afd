package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaBuilder(t *testing.T) {
	schema := NewSchema().
		Title("Name").
		Number("Estimate", NumberFormatNumber).
		Select("Priority", NewSelectOption("High", ColorRed), NewSelectOption("Low")).
		Checkbox("Done").
		Date("Due").
		Build()

	require.Len(t, schema, 5)
	assert.Equal(t, PropertyTypeTitle, schema["Name"].Type)
	assert.NotNil(t, schema["Name"].Title)

	require.NotNil(t, schema["Estimate"].Number)
	assert.Equal(t, NumberFormatNumber, schema["Estimate"].Number.Format)

	require.NotNil(t, schema["Priority"].Select)
	options := schema["Priority"].Select.Options
	require.Len(t, options, 2)
	assert.Equal(t, "High", options[0].Name)
	assert.Equal(t, ColorRed, options[0].Color)
	assert.Equal(t, "Low", options[1].Name)
}

func TestSchemaBuilderLastWriteWins(t *testing.T) {
	schema := NewSchema().
		RichText("Field").
		Checkbox("Field").
		Build()

	require.Len(t, schema, 1)
	assert.Equal(t, PropertyTypeCheckbox, schema["Field"].Type)
	assert.Nil(t, schema["Field"].RichText)
}

func TestSchemaBuilderRelation(t *testing.T) {
	schema := NewSchema().
		Relation("Tasks", "ds-1").
		RelationDual("Blocked by", "ds-2", "Blocks").
		Build()

	single := schema["Tasks"].Relation
	require.NotNil(t, single)
	assert.Equal(t, "ds-1", single.DataSourceID)
	assert.NotNil(t, single.SingleProperty)

	dual := schema["Blocked by"].Relation
	require.NotNil(t, dual)
	require.NotNil(t, dual.DualProperty)
	assert.Equal(t, "Blocks", dual.DualProperty.SyncedPropertyName)
}

func TestPropertiesBuilder(t *testing.T) {
	props := NewProperties().
		Title("Name", "Launch checklist").
		Number("Estimate", 2.5).
		Select("Priority", "High").
		MultiSelect("Tags", "infra", "urgent").
		Checkbox("Done", true).
		URL("Link", "https://example.com").
		Build()

	require.Len(t, props, 6)
	assert.Equal(t, "Launch checklist", PlainText(props["Name"].Title))
	require.NotNil(t, props["Estimate"].Number)
	assert.Equal(t, 2.5, *props["Estimate"].Number)
	assert.Equal(t, "High", props["Priority"].Select.Name)

	tags := props["Tags"].MultiSelect
	require.Len(t, tags, 2)
	assert.Equal(t, "infra", tags[0].Name)

	require.NotNil(t, props["Done"].Checkbox)
	assert.True(t, *props["Done"].Checkbox)
	require.NotNil(t, props["Link"].URL)
	assert.Equal(t, "https://example.com", *props["Link"].URL)
}

func TestPropertiesBuilderLastWriteWins(t *testing.T) {
	props := NewProperties().
		Select("Status", "Draft").
		Select("Status", "Published").
		Build()

	require.Len(t, props, 1)
	assert.Equal(t, "Published", props["Status"].Select.Name)
}

func TestPropertyValueJSONShapes(t *testing.T) {
	props := NewProperties().
		Select("Priority", "High").
		Checkbox("Done", false).
		Build()

	selData, err := json.Marshal(props["Priority"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"select","select":{"name":"High"}}`, string(selData))

	// False is a value, not an omission.
	boolData, err := json.Marshal(props["Done"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"checkbox","checkbox":false}`, string(boolData))
}

func TestPropertyValueDecodeUniqueID(t *testing.T) {
	var value PropertyValue
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "unique_id",
		"unique_id": {"prefix": "TASK", "number": 42}
	}`), &value))

	require.NotNil(t, value.UniqueID)
	assert.Equal(t, "TASK-42", value.UniqueID.String())
}
