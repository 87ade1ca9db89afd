package notion

// PropertyType discriminates both the schema and value variants; the two
// models are parallel and share one discriminator set.
type PropertyType string

const (
	PropertyTypeTitle          PropertyType = "title"
	PropertyTypeRichText       PropertyType = "rich_text"
	PropertyTypeNumber         PropertyType = "number"
	PropertyTypeSelect         PropertyType = "select"
	PropertyTypeMultiSelect    PropertyType = "multi_select"
	PropertyTypeStatus         PropertyType = "status"
	PropertyTypeDate           PropertyType = "date"
	PropertyTypePeople         PropertyType = "people"
	PropertyTypeFiles          PropertyType = "files"
	PropertyTypeCheckbox       PropertyType = "checkbox"
	PropertyTypeURL            PropertyType = "url"
	PropertyTypeEmail          PropertyType = "email"
	PropertyTypePhoneNumber    PropertyType = "phone_number"
	PropertyTypeRelation       PropertyType = "relation"
	PropertyTypeRollup         PropertyType = "rollup"
	PropertyTypeFormula        PropertyType = "formula"
	PropertyTypeCreatedTime    PropertyType = "created_time"
	PropertyTypeCreatedBy      PropertyType = "created_by"
	PropertyTypeLastEditedTime PropertyType = "last_edited_time"
	PropertyTypeLastEditedBy   PropertyType = "last_edited_by"
	PropertyTypeUniqueID       PropertyType = "unique_id"
)

// NumberFormat controls how a number column renders.
type NumberFormat string

const (
	NumberFormatNumber           NumberFormat = "number"
	NumberFormatNumberWithCommas NumberFormat = "number_with_commas"
	NumberFormatPercent          NumberFormat = "percent"
	NumberFormatDollar           NumberFormat = "dollar"
	NumberFormatEuro             NumberFormat = "euro"
	NumberFormatYen              NumberFormat = "yen"
)

// PropertySchema defines one column of a data source. Exactly one variant
// configuration is populated, matching Type.
type PropertySchema struct {
	ID   string       `json:"id,omitempty"`
	Name string       `json:"name,omitempty"`
	Type PropertyType `json:"type,omitempty"`

	Title          *EmptyObject    `json:"title,omitempty"`
	RichText       *EmptyObject    `json:"rich_text,omitempty"`
	Number         *NumberConfig   `json:"number,omitempty"`
	Select         *SelectConfig   `json:"select,omitempty"`
	MultiSelect    *SelectConfig   `json:"multi_select,omitempty"`
	Status         *StatusConfig   `json:"status,omitempty"`
	Date           *EmptyObject    `json:"date,omitempty"`
	People         *EmptyObject    `json:"people,omitempty"`
	Files          *EmptyObject    `json:"files,omitempty"`
	Checkbox       *EmptyObject    `json:"checkbox,omitempty"`
	URL            *EmptyObject    `json:"url,omitempty"`
	Email          *EmptyObject    `json:"email,omitempty"`
	PhoneNumber    *EmptyObject    `json:"phone_number,omitempty"`
	Relation       *RelationConfig `json:"relation,omitempty"`
	Rollup         *RollupConfig   `json:"rollup,omitempty"`
	Formula        *FormulaConfig  `json:"formula,omitempty"`
	CreatedTime    *EmptyObject    `json:"created_time,omitempty"`
	CreatedBy      *EmptyObject    `json:"created_by,omitempty"`
	LastEditedTime *EmptyObject    `json:"last_edited_time,omitempty"`
	LastEditedBy   *EmptyObject    `json:"last_edited_by,omitempty"`
	UniqueID       *UniqueIDConfig `json:"unique_id,omitempty"`
}

// NumberConfig configures a number column.
type NumberConfig struct {
	Format NumberFormat `json:"format,omitempty"`
}

// SelectConfig configures a select or multi-select column. Option names are
// unique within one property; the API rejects duplicates.
type SelectConfig struct {
	Options []SelectOption `json:"options,omitempty"`
}

// SelectOption is one named, colored option of a select-like column.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color Color  `json:"color,omitempty"`
}

// NewSelectOption returns a select option with an optional color.
func NewSelectOption(name string, color ...Color) SelectOption {
	opt := SelectOption{Name: name}
	if len(color) > 0 {
		opt.Color = color[0]
	}
	return opt
}

// StatusConfig configures a status column. Options and groups are
// server-managed and read-only on create.
type StatusConfig struct {
	Options []SelectOption `json:"options,omitempty"`
	Groups  []StatusGroup  `json:"groups,omitempty"`
}

// StatusGroup is a server-defined grouping of status options.
type StatusGroup struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	Color     Color    `json:"color,omitempty"`
	OptionIDs []string `json:"option_ids,omitempty"`
}

// RelationConfig configures a relation column pointing at another data
// source. Type is "single_property" or "dual_property".
type RelationConfig struct {
	DataSourceID   string        `json:"data_source_id,omitempty"`
	DatabaseID     string        `json:"database_id,omitempty"`
	Type           string        `json:"type,omitempty"`
	SingleProperty *EmptyObject  `json:"single_property,omitempty"`
	DualProperty   *DualProperty `json:"dual_property,omitempty"`
}

// DualProperty names the synced inverse property on the related data source.
type DualProperty struct {
	SyncedPropertyName string `json:"synced_property_name,omitempty"`
	SyncedPropertyID   string `json:"synced_property_id,omitempty"`
}

// RollupConfig configures a rollup column.
type RollupConfig struct {
	RelationPropertyName string `json:"relation_property_name,omitempty"`
	RelationPropertyID   string `json:"relation_property_id,omitempty"`
	RollupPropertyName   string `json:"rollup_property_name,omitempty"`
	RollupPropertyID     string `json:"rollup_property_id,omitempty"`
	Function             string `json:"function,omitempty"`
}

// FormulaConfig configures a formula column.
type FormulaConfig struct {
	Expression string `json:"expression"`
}

// UniqueIDConfig configures a unique_id column.
type UniqueIDConfig struct {
	Prefix *string `json:"prefix,omitempty"`
}

// SchemaBuilder composes a data source property schema keyed by property
// name. Duplicate names follow map semantics: last write wins.
type SchemaBuilder struct {
	props map[string]PropertySchema
}

// NewSchema creates an empty schema builder.
func NewSchema() *SchemaBuilder {
	return &SchemaBuilder{props: make(map[string]PropertySchema)}
}

// Build returns the accumulated name-to-schema mapping.
func (b *SchemaBuilder) Build() map[string]PropertySchema {
	return b.props
}

// Title defines the title column. Every data source needs exactly one; the
// server enforces it, not the builder.
func (b *SchemaBuilder) Title(name string) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypeTitle, Title: &EmptyObject{}}
	return b
}

// RichText defines a rich text column.
func (b *SchemaBuilder) RichText(name string) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypeRichText, RichText: &EmptyObject{}}
	return b
}

// Number defines a number column with an optional display format.
func (b *SchemaBuilder) Number(name string, format ...NumberFormat) *SchemaBuilder {
	cfg := &NumberConfig{Format: NumberFormatNumber}
	if len(format) > 0 {
		cfg.Format = format[0]
	}
	b.props[name] = PropertySchema{Type: PropertyTypeNumber, Number: cfg}
	return b
}

// Select defines a select column with the given options.
func (b *SchemaBuilder) Select(name string, options ...SelectOption) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypeSelect, Select: &SelectConfig{Options: options}}
	return b
}

// MultiSelect defines a multi-select column with the given options.
func (b *SchemaBuilder) MultiSelect(name string, options ...SelectOption) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypeMultiSelect, MultiSelect: &SelectConfig{Options: options}}
	return b
}

// Status defines a status column. Option and group management is
// server-side.
func (b *SchemaBuilder) Status(name string) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypeStatus, Status: &StatusConfig{}}
	return b
}

// Date defines a date column.
func (b *SchemaBuilder) Date(name string) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypeDate, Date: &EmptyObject{}}
	return b
}

// People defines a people column.
func (b *SchemaBuilder) People(name string) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypePeople, People: &EmptyObject{}}
	return b
}

// Files defines a files column.
func (b *SchemaBuilder) Files(name string) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypeFiles, Files: &EmptyObject{}}
	return b
}

// Checkbox defines a checkbox column.
func (b *SchemaBuilder) Checkbox(name string) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypeCheckbox, Checkbox: &EmptyObject{}}
	return b
}

// URL defines a url column.
func (b *SchemaBuilder) URL(name string) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypeURL, URL: &EmptyObject{}}
	return b
}

// Email defines an email column.
func (b *SchemaBuilder) Email(name string) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypeEmail, Email: &EmptyObject{}}
	return b
}

// PhoneNumber defines a phone number column.
func (b *SchemaBuilder) PhoneNumber(name string) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypePhoneNumber, PhoneNumber: &EmptyObject{}}
	return b
}

// Relation defines a single-property relation to another data source.
func (b *SchemaBuilder) Relation(name, dataSourceID string) *SchemaBuilder {
	b.props[name] = PropertySchema{
		Type: PropertyTypeRelation,
		Relation: &RelationConfig{
			DataSourceID:   dataSourceID,
			Type:           "single_property",
			SingleProperty: &EmptyObject{},
		},
	}
	return b
}

// RelationDual defines a dual-property relation whose inverse column on the
// target data source is named syncedName.
func (b *SchemaBuilder) RelationDual(name, dataSourceID, syncedName string) *SchemaBuilder {
	b.props[name] = PropertySchema{
		Type: PropertyTypeRelation,
		Relation: &RelationConfig{
			DataSourceID: dataSourceID,
			Type:         "dual_property",
			DualProperty: &DualProperty{SyncedPropertyName: syncedName},
		},
	}
	return b
}

// Formula defines a formula column.
func (b *SchemaBuilder) Formula(name, expression string) *SchemaBuilder {
	b.props[name] = PropertySchema{Type: PropertyTypeFormula, Formula: &FormulaConfig{Expression: expression}}
	return b
}

// UniqueID defines a unique_id column with an optional prefix.
func (b *SchemaBuilder) UniqueID(name string, prefix ...string) *SchemaBuilder {
	cfg := &UniqueIDConfig{}
	if len(prefix) > 0 {
		cfg.Prefix = &prefix[0]
	}
	b.props[name] = PropertySchema{Type: PropertyTypeUniqueID, UniqueID: cfg}
	return b
}
