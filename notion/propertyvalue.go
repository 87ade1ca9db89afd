package notion

import (
	"strconv"
	"time"
)

// PropertyValue holds one page property value against a data source schema.
// Exactly one variant field is populated, matching Type. The library does not
// verify that the value type matches the owning schema's column type; that
// cross-schema invariant is enforced only by the remote API.
type PropertyValue struct {
	ID   string       `json:"id,omitempty"`
	Type PropertyType `json:"type,omitempty"`

	Title          []RichText        `json:"title,omitempty"`
	RichText       []RichText        `json:"rich_text,omitempty"`
	Number         *float64          `json:"number,omitempty"`
	Select         *SelectOption     `json:"select,omitempty"`
	MultiSelect    []SelectOption    `json:"multi_select,omitempty"`
	Status         *SelectOption     `json:"status,omitempty"`
	Date           *Date             `json:"date,omitempty"`
	People         []User            `json:"people,omitempty"`
	Files          []File            `json:"files,omitempty"`
	Checkbox       *bool             `json:"checkbox,omitempty"`
	URL            *string           `json:"url,omitempty"`
	Email          *string           `json:"email,omitempty"`
	PhoneNumber    *string           `json:"phone_number,omitempty"`
	Relation       []ObjectReference `json:"relation,omitempty"`
	Rollup         *RollupValue      `json:"rollup,omitempty"`
	Formula        *FormulaValue     `json:"formula,omitempty"`
	CreatedTime    *time.Time        `json:"created_time,omitempty"`
	CreatedBy      *User             `json:"created_by,omitempty"`
	LastEditedTime *time.Time        `json:"last_edited_time,omitempty"`
	LastEditedBy   *User             `json:"last_edited_by,omitempty"`
	UniqueID       *UniqueIDValue    `json:"unique_id,omitempty"`
}

// FormulaValue is the computed result of a formula column.
type FormulaValue struct {
	Type    string   `json:"type"`
	String  *string  `json:"string,omitempty"`
	Number  *float64 `json:"number,omitempty"`
	Boolean *bool    `json:"boolean,omitempty"`
	Date    *Date    `json:"date,omitempty"`
}

// RollupValue is the computed result of a rollup column.
type RollupValue struct {
	Type     string          `json:"type"`
	Number   *float64        `json:"number,omitempty"`
	Date     *Date           `json:"date,omitempty"`
	Array    []PropertyValue `json:"array,omitempty"`
	Function string          `json:"function,omitempty"`
}

// UniqueIDValue is the value of a unique_id column.
type UniqueIDValue struct {
	Prefix *string `json:"prefix,omitempty"`
	Number int     `json:"number"`
}

func (v UniqueIDValue) String() string {
	s := ""
	if v.Prefix != nil {
		s = *v.Prefix + "-"
	}
	return s + strconv.Itoa(v.Number)
}

// PropertiesBuilder composes a page's property values keyed by property
// name. Duplicate names follow map semantics: last write wins. Whether a
// value's type matches the target schema is checked server-side only.
type PropertiesBuilder struct {
	props map[string]PropertyValue
}

// NewProperties creates an empty property value builder.
func NewProperties() *PropertiesBuilder {
	return &PropertiesBuilder{props: make(map[string]PropertyValue)}
}

// Build returns the accumulated name-to-value mapping.
func (b *PropertiesBuilder) Build() map[string]PropertyValue {
	return b.props
}

// Title sets the title property.
func (b *PropertiesBuilder) Title(name, text string) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypeTitle, Title: []RichText{Text(text)}}
	return b
}

// TitleRich sets the title property with explicit rich text runs.
func (b *PropertiesBuilder) TitleRich(name string, runs []RichText) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypeTitle, Title: runs}
	return b
}

// RichText sets a rich text property from plain text.
func (b *PropertiesBuilder) RichText(name, text string) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypeRichText, RichText: []RichText{Text(text)}}
	return b
}

// RichTextRuns sets a rich text property with explicit runs.
func (b *PropertiesBuilder) RichTextRuns(name string, runs []RichText) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypeRichText, RichText: runs}
	return b
}

// Number sets a number property.
func (b *PropertiesBuilder) Number(name string, value float64) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypeNumber, Number: &value}
	return b
}

// Select sets a select property by option name.
func (b *PropertiesBuilder) Select(name, option string) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypeSelect, Select: &SelectOption{Name: option}}
	return b
}

// MultiSelect sets a multi-select property by option names.
func (b *PropertiesBuilder) MultiSelect(name string, options ...string) *PropertiesBuilder {
	opts := make([]SelectOption, len(options))
	for i, option := range options {
		opts[i] = SelectOption{Name: option}
	}
	b.props[name] = PropertyValue{Type: PropertyTypeMultiSelect, MultiSelect: opts}
	return b
}

// Status sets a status property by option name.
func (b *PropertiesBuilder) Status(name, option string) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypeStatus, Status: &SelectOption{Name: option}}
	return b
}

// Date sets a date property.
func (b *PropertiesBuilder) Date(name string, date Date) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypeDate, Date: &date}
	return b
}

// People sets a people property by user IDs.
func (b *PropertiesBuilder) People(name string, userIDs ...string) *PropertiesBuilder {
	users := make([]User, len(userIDs))
	for i, id := range userIDs {
		users[i] = User{Object: "user", ID: id}
	}
	b.props[name] = PropertyValue{Type: PropertyTypePeople, People: users}
	return b
}

// Files sets a files property.
func (b *PropertiesBuilder) Files(name string, files ...*File) *PropertiesBuilder {
	value := make([]File, len(files))
	for i, f := range files {
		value[i] = *f
	}
	b.props[name] = PropertyValue{Type: PropertyTypeFiles, Files: value}
	return b
}

// Checkbox sets a checkbox property.
func (b *PropertiesBuilder) Checkbox(name string, checked bool) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypeCheckbox, Checkbox: &checked}
	return b
}

// URL sets a url property.
func (b *PropertiesBuilder) URL(name, url string) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypeURL, URL: &url}
	return b
}

// Email sets an email property.
func (b *PropertiesBuilder) Email(name, email string) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypeEmail, Email: &email}
	return b
}

// PhoneNumber sets a phone number property.
func (b *PropertiesBuilder) PhoneNumber(name, phone string) *PropertiesBuilder {
	b.props[name] = PropertyValue{Type: PropertyTypePhoneNumber, PhoneNumber: &phone}
	return b
}

// Relation sets a relation property by related page IDs.
func (b *PropertiesBuilder) Relation(name string, pageIDs ...string) *PropertiesBuilder {
	refs := make([]ObjectReference, len(pageIDs))
	for i, id := range pageIDs {
		refs[i] = ObjectReference{ID: id}
	}
	b.props[name] = PropertyValue{Type: PropertyTypeRelation, Relation: refs}
	return b
}

// Set stores an already constructed property value.
func (b *PropertiesBuilder) Set(name string, value PropertyValue) *PropertiesBuilder {
	b.props[name] = value
	return b
}
