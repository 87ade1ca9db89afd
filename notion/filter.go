package notion

import (
	"time"
)

// Filter is a compiled filter expression: either a leaf property condition
// or an and/or combinator over child expressions. Built bottom-up by the
// typed condition builders below and never mutated afterwards.
type Filter struct {
	And []Filter `json:"and,omitempty"`
	Or  []Filter `json:"or,omitempty"`

	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`

	Title          *TextCondition     `json:"title,omitempty"`
	RichText       *TextCondition     `json:"rich_text,omitempty"`
	URL            *TextCondition     `json:"url,omitempty"`
	Email          *TextCondition     `json:"email,omitempty"`
	PhoneNumber    *TextCondition     `json:"phone_number,omitempty"`
	Number         *NumberCondition   `json:"number,omitempty"`
	Checkbox       *CheckboxCondition `json:"checkbox,omitempty"`
	Select         *SelectCondition   `json:"select,omitempty"`
	MultiSelect    *ContainsCondition `json:"multi_select,omitempty"`
	Status         *SelectCondition   `json:"status,omitempty"`
	Date           *DateCondition     `json:"date,omitempty"`
	People         *ContainsCondition `json:"people,omitempty"`
	Files          *ExistsCondition   `json:"files,omitempty"`
	Relation       *ContainsCondition `json:"relation,omitempty"`
	UniqueID       *NumberCondition   `json:"unique_id,omitempty"`
	CreatedTime    *DateCondition     `json:"created_time,omitempty"`
	LastEditedTime *DateCondition     `json:"last_edited_time,omitempty"`
}

// And combines filters so that every child must match.
func And(filters ...Filter) Filter {
	return Filter{And: filters}
}

// Or combines filters so that at least one child must match.
func Or(filters ...Filter) Filter {
	return Filter{Or: filters}
}

// TextCondition holds the comparators valid for text-like properties.
type TextCondition struct {
	Equals         *string `json:"equals,omitempty"`
	DoesNotEqual   *string `json:"does_not_equal,omitempty"`
	Contains       *string `json:"contains,omitempty"`
	DoesNotContain *string `json:"does_not_contain,omitempty"`
	StartsWith     *string `json:"starts_with,omitempty"`
	EndsWith       *string `json:"ends_with,omitempty"`
	IsEmpty        bool    `json:"is_empty,omitempty"`
	IsNotEmpty     bool    `json:"is_not_empty,omitempty"`
}

// NumberCondition holds the comparators valid for number properties.
type NumberCondition struct {
	Equals               *float64 `json:"equals,omitempty"`
	DoesNotEqual         *float64 `json:"does_not_equal,omitempty"`
	GreaterThan          *float64 `json:"greater_than,omitempty"`
	LessThan             *float64 `json:"less_than,omitempty"`
	GreaterThanOrEqualTo *float64 `json:"greater_than_or_equal_to,omitempty"`
	LessThanOrEqualTo    *float64 `json:"less_than_or_equal_to,omitempty"`
	IsEmpty              bool     `json:"is_empty,omitempty"`
	IsNotEmpty           bool     `json:"is_not_empty,omitempty"`
}

// CheckboxCondition holds the comparators valid for checkbox properties.
type CheckboxCondition struct {
	Equals       *bool `json:"equals,omitempty"`
	DoesNotEqual *bool `json:"does_not_equal,omitempty"`
}

// SelectCondition holds the comparators valid for select and status
// properties.
type SelectCondition struct {
	Equals       string `json:"equals,omitempty"`
	DoesNotEqual string `json:"does_not_equal,omitempty"`
	IsEmpty      bool   `json:"is_empty,omitempty"`
	IsNotEmpty   bool   `json:"is_not_empty,omitempty"`
}

// ContainsCondition holds the comparators valid for multi-select, people,
// and relation properties.
type ContainsCondition struct {
	Contains       string `json:"contains,omitempty"`
	DoesNotContain string `json:"does_not_contain,omitempty"`
	IsEmpty        bool   `json:"is_empty,omitempty"`
	IsNotEmpty     bool   `json:"is_not_empty,omitempty"`
}

// ExistsCondition holds the comparators valid for files properties.
type ExistsCondition struct {
	IsEmpty    bool `json:"is_empty,omitempty"`
	IsNotEmpty bool `json:"is_not_empty,omitempty"`
}

// DateCondition holds the comparators valid for date properties and
// timestamps.
type DateCondition struct {
	Equals     *string      `json:"equals,omitempty"`
	Before     *string      `json:"before,omitempty"`
	After      *string      `json:"after,omitempty"`
	OnOrBefore *string      `json:"on_or_before,omitempty"`
	OnOrAfter  *string      `json:"on_or_after,omitempty"`
	PastWeek   *EmptyObject `json:"past_week,omitempty"`
	PastMonth  *EmptyObject `json:"past_month,omitempty"`
	PastYear   *EmptyObject `json:"past_year,omitempty"`
	NextWeek   *EmptyObject `json:"next_week,omitempty"`
	NextMonth  *EmptyObject `json:"next_month,omitempty"`
	NextYear   *EmptyObject `json:"next_year,omitempty"`
	IsEmpty    bool         `json:"is_empty,omitempty"`
	IsNotEmpty bool         `json:"is_not_empty,omitempty"`
}

// DateInput is a date comparator argument: an ISO 8601 string, a time.Time,
// or a Date. All three normalize to the same wire format.
type DateInput interface{}

func dateString(v DateInput) string {
	switch d := v.(type) {
	case string:
		return d
	case time.Time:
		return d.Format(time.RFC3339)
	case Date:
		return d.Start
	case *Date:
		return d.Start
	default:
		return ""
	}
}

// TitleFilter builds conditions on the title property.
type TitleFilter struct{ property string }

// Title starts a filter on the named title property.
func Title(property string) TitleFilter { return TitleFilter{property} }

func (f TitleFilter) condition(c TextCondition) Filter {
	return Filter{Property: f.property, Title: &c}
}

// Equals matches titles equal to v.
func (f TitleFilter) Equals(v string) Filter { return f.condition(TextCondition{Equals: &v}) }

// DoesNotEqual matches titles not equal to v.
func (f TitleFilter) DoesNotEqual(v string) Filter {
	return f.condition(TextCondition{DoesNotEqual: &v})
}

// Contains matches titles containing v.
func (f TitleFilter) Contains(v string) Filter { return f.condition(TextCondition{Contains: &v}) }

// DoesNotContain matches titles not containing v.
func (f TitleFilter) DoesNotContain(v string) Filter {
	return f.condition(TextCondition{DoesNotContain: &v})
}

// StartsWith matches titles starting with v.
func (f TitleFilter) StartsWith(v string) Filter { return f.condition(TextCondition{StartsWith: &v}) }

// EndsWith matches titles ending with v.
func (f TitleFilter) EndsWith(v string) Filter { return f.condition(TextCondition{EndsWith: &v}) }

// IsEmpty matches empty titles.
func (f TitleFilter) IsEmpty() Filter { return f.condition(TextCondition{IsEmpty: true}) }

// IsNotEmpty matches non-empty titles.
func (f TitleFilter) IsNotEmpty() Filter { return f.condition(TextCondition{IsNotEmpty: true}) }

// RichTextFilter builds conditions on a rich text property.
type RichTextFilter struct{ property string }

// RichTextProp starts a filter on the named rich text property.
func RichTextProp(property string) RichTextFilter { return RichTextFilter{property} }

func (f RichTextFilter) condition(c TextCondition) Filter {
	return Filter{Property: f.property, RichText: &c}
}

// Equals matches values equal to v.
func (f RichTextFilter) Equals(v string) Filter { return f.condition(TextCondition{Equals: &v}) }

// Contains matches values containing v.
func (f RichTextFilter) Contains(v string) Filter { return f.condition(TextCondition{Contains: &v}) }

// DoesNotContain matches values not containing v.
func (f RichTextFilter) DoesNotContain(v string) Filter {
	return f.condition(TextCondition{DoesNotContain: &v})
}

// StartsWith matches values starting with v.
func (f RichTextFilter) StartsWith(v string) Filter {
	return f.condition(TextCondition{StartsWith: &v})
}

// EndsWith matches values ending with v.
func (f RichTextFilter) EndsWith(v string) Filter { return f.condition(TextCondition{EndsWith: &v}) }

// IsEmpty matches empty values.
func (f RichTextFilter) IsEmpty() Filter { return f.condition(TextCondition{IsEmpty: true}) }

// IsNotEmpty matches non-empty values.
func (f RichTextFilter) IsNotEmpty() Filter { return f.condition(TextCondition{IsNotEmpty: true}) }

// NumberFilter builds conditions on a number property.
type NumberFilter struct{ property string }

// Number starts a filter on the named number property.
func Number(property string) NumberFilter { return NumberFilter{property} }

func (f NumberFilter) condition(c NumberCondition) Filter {
	return Filter{Property: f.property, Number: &c}
}

// Equals matches numbers equal to v.
func (f NumberFilter) Equals(v float64) Filter { return f.condition(NumberCondition{Equals: &v}) }

// DoesNotEqual matches numbers not equal to v.
func (f NumberFilter) DoesNotEqual(v float64) Filter {
	return f.condition(NumberCondition{DoesNotEqual: &v})
}

// GreaterThan matches numbers strictly greater than v.
func (f NumberFilter) GreaterThan(v float64) Filter {
	return f.condition(NumberCondition{GreaterThan: &v})
}

// LessThan matches numbers strictly less than v.
func (f NumberFilter) LessThan(v float64) Filter { return f.condition(NumberCondition{LessThan: &v}) }

// GreaterThanOrEqualTo matches numbers greater than or equal to v.
func (f NumberFilter) GreaterThanOrEqualTo(v float64) Filter {
	return f.condition(NumberCondition{GreaterThanOrEqualTo: &v})
}

// LessThanOrEqualTo matches numbers less than or equal to v.
func (f NumberFilter) LessThanOrEqualTo(v float64) Filter {
	return f.condition(NumberCondition{LessThanOrEqualTo: &v})
}

// IsEmpty matches unset numbers.
func (f NumberFilter) IsEmpty() Filter { return f.condition(NumberCondition{IsEmpty: true}) }

// IsNotEmpty matches set numbers.
func (f NumberFilter) IsNotEmpty() Filter { return f.condition(NumberCondition{IsNotEmpty: true}) }

// CheckboxFilter builds conditions on a checkbox property.
type CheckboxFilter struct{ property string }

// Checkbox starts a filter on the named checkbox property.
func Checkbox(property string) CheckboxFilter { return CheckboxFilter{property} }

// Equals matches checkboxes equal to v.
func (f CheckboxFilter) Equals(v bool) Filter {
	return Filter{Property: f.property, Checkbox: &CheckboxCondition{Equals: &v}}
}

// DoesNotEqual matches checkboxes not equal to v.
func (f CheckboxFilter) DoesNotEqual(v bool) Filter {
	return Filter{Property: f.property, Checkbox: &CheckboxCondition{DoesNotEqual: &v}}
}

// SelectFilter builds conditions on a select property.
type SelectFilter struct{ property string }

// Select starts a filter on the named select property.
func Select(property string) SelectFilter { return SelectFilter{property} }

func (f SelectFilter) condition(c SelectCondition) Filter {
	return Filter{Property: f.property, Select: &c}
}

// Equals matches the option named v.
func (f SelectFilter) Equals(v string) Filter { return f.condition(SelectCondition{Equals: v}) }

// DoesNotEqual matches any option except v.
func (f SelectFilter) DoesNotEqual(v string) Filter {
	return f.condition(SelectCondition{DoesNotEqual: v})
}

// IsEmpty matches pages with no option set.
func (f SelectFilter) IsEmpty() Filter { return f.condition(SelectCondition{IsEmpty: true}) }

// IsNotEmpty matches pages with an option set.
func (f SelectFilter) IsNotEmpty() Filter { return f.condition(SelectCondition{IsNotEmpty: true}) }

// StatusFilter builds conditions on a status property.
type StatusFilter struct{ property string }

// Status starts a filter on the named status property.
func Status(property string) StatusFilter { return StatusFilter{property} }

func (f StatusFilter) condition(c SelectCondition) Filter {
	return Filter{Property: f.property, Status: &c}
}

// Equals matches the status named v.
func (f StatusFilter) Equals(v string) Filter { return f.condition(SelectCondition{Equals: v}) }

// DoesNotEqual matches any status except v.
func (f StatusFilter) DoesNotEqual(v string) Filter {
	return f.condition(SelectCondition{DoesNotEqual: v})
}

// IsEmpty matches pages with no status set.
func (f StatusFilter) IsEmpty() Filter { return f.condition(SelectCondition{IsEmpty: true}) }

// IsNotEmpty matches pages with a status set.
func (f StatusFilter) IsNotEmpty() Filter { return f.condition(SelectCondition{IsNotEmpty: true}) }

// MultiSelectFilter builds conditions on a multi-select property.
type MultiSelectFilter struct{ property string }

// MultiSelect starts a filter on the named multi-select property.
func MultiSelect(property string) MultiSelectFilter { return MultiSelectFilter{property} }

func (f MultiSelectFilter) condition(c ContainsCondition) Filter {
	return Filter{Property: f.property, MultiSelect: &c}
}

// Contains matches pages whose selection includes v.
func (f MultiSelectFilter) Contains(v string) Filter {
	return f.condition(ContainsCondition{Contains: v})
}

// DoesNotContain matches pages whose selection excludes v.
func (f MultiSelectFilter) DoesNotContain(v string) Filter {
	return f.condition(ContainsCondition{DoesNotContain: v})
}

// IsEmpty matches pages with no selection.
func (f MultiSelectFilter) IsEmpty() Filter { return f.condition(ContainsCondition{IsEmpty: true}) }

// IsNotEmpty matches pages with a selection.
func (f MultiSelectFilter) IsNotEmpty() Filter {
	return f.condition(ContainsCondition{IsNotEmpty: true})
}

// DateFilter builds conditions on a date property.
type DateFilter struct{ property string }

// DateProp starts a filter on the named date property.
func DateProp(property string) DateFilter { return DateFilter{property} }

func (f DateFilter) condition(c DateCondition) Filter {
	return Filter{Property: f.property, Date: &c}
}

// Equals matches dates equal to v.
func (f DateFilter) Equals(v DateInput) Filter {
	s := dateString(v)
	return f.condition(DateCondition{Equals: &s})
}

// Before matches dates strictly before v.
func (f DateFilter) Before(v DateInput) Filter {
	s := dateString(v)
	return f.condition(DateCondition{Before: &s})
}

// After matches dates strictly after v.
func (f DateFilter) After(v DateInput) Filter {
	s := dateString(v)
	return f.condition(DateCondition{After: &s})
}

// OnOrBefore matches dates on or before v.
func (f DateFilter) OnOrBefore(v DateInput) Filter {
	s := dateString(v)
	return f.condition(DateCondition{OnOrBefore: &s})
}

// OnOrAfter matches dates on or after v.
func (f DateFilter) OnOrAfter(v DateInput) Filter {
	s := dateString(v)
	return f.condition(DateCondition{OnOrAfter: &s})
}

// PastWeek matches dates within the past week.
func (f DateFilter) PastWeek() Filter { return f.condition(DateCondition{PastWeek: &EmptyObject{}}) }

// PastMonth matches dates within the past month.
func (f DateFilter) PastMonth() Filter { return f.condition(DateCondition{PastMonth: &EmptyObject{}}) }

// PastYear matches dates within the past year.
func (f DateFilter) PastYear() Filter { return f.condition(DateCondition{PastYear: &EmptyObject{}}) }

// NextWeek matches dates within the next week.
func (f DateFilter) NextWeek() Filter { return f.condition(DateCondition{NextWeek: &EmptyObject{}}) }

// NextMonth matches dates within the next month.
func (f DateFilter) NextMonth() Filter { return f.condition(DateCondition{NextMonth: &EmptyObject{}}) }

// NextYear matches dates within the next year.
func (f DateFilter) NextYear() Filter { return f.condition(DateCondition{NextYear: &EmptyObject{}}) }

// IsEmpty matches unset dates.
func (f DateFilter) IsEmpty() Filter { return f.condition(DateCondition{IsEmpty: true}) }

// IsNotEmpty matches set dates.
func (f DateFilter) IsNotEmpty() Filter { return f.condition(DateCondition{IsNotEmpty: true}) }

// PeopleFilter builds conditions on a people property.
type PeopleFilter struct{ property string }

// People starts a filter on the named people property.
func People(property string) PeopleFilter { return PeopleFilter{property} }

func (f PeopleFilter) condition(c ContainsCondition) Filter {
	return Filter{Property: f.property, People: &c}
}

// Contains matches pages mentioning the user with ID v.
func (f PeopleFilter) Contains(v string) Filter { return f.condition(ContainsCondition{Contains: v}) }

// DoesNotContain matches pages not mentioning the user with ID v.
func (f PeopleFilter) DoesNotContain(v string) Filter {
	return f.condition(ContainsCondition{DoesNotContain: v})
}

// IsEmpty matches pages with nobody assigned.
func (f PeopleFilter) IsEmpty() Filter { return f.condition(ContainsCondition{IsEmpty: true}) }

// IsNotEmpty matches pages with somebody assigned.
func (f PeopleFilter) IsNotEmpty() Filter { return f.condition(ContainsCondition{IsNotEmpty: true}) }

// RelationFilter builds conditions on a relation property.
type RelationFilter struct{ property string }

// Relation starts a filter on the named relation property.
func Relation(property string) RelationFilter { return RelationFilter{property} }

func (f RelationFilter) condition(c ContainsCondition) Filter {
	return Filter{Property: f.property, Relation: &c}
}

// Contains matches pages related to the page with ID v.
func (f RelationFilter) Contains(v string) Filter {
	return f.condition(ContainsCondition{Contains: v})
}

// DoesNotContain matches pages not related to the page with ID v.
func (f RelationFilter) DoesNotContain(v string) Filter {
	return f.condition(ContainsCondition{DoesNotContain: v})
}

// IsEmpty matches pages with no relations.
func (f RelationFilter) IsEmpty() Filter { return f.condition(ContainsCondition{IsEmpty: true}) }

// IsNotEmpty matches pages with relations.
func (f RelationFilter) IsNotEmpty() Filter { return f.condition(ContainsCondition{IsNotEmpty: true}) }

// FilesFilter builds conditions on a files property.
type FilesFilter struct{ property string }

// Files starts a filter on the named files property.
func Files(property string) FilesFilter { return FilesFilter{property} }

// IsEmpty matches pages with no attached files.
func (f FilesFilter) IsEmpty() Filter {
	return Filter{Property: f.property, Files: &ExistsCondition{IsEmpty: true}}
}

// IsNotEmpty matches pages with attached files.
func (f FilesFilter) IsNotEmpty() Filter {
	return Filter{Property: f.property, Files: &ExistsCondition{IsNotEmpty: true}}
}

// UniqueIDFilter builds conditions on a unique_id property.
type UniqueIDFilter struct{ property string }

// UniqueID starts a filter on the named unique_id property.
func UniqueID(property string) UniqueIDFilter { return UniqueIDFilter{property} }

func (f UniqueIDFilter) condition(c NumberCondition) Filter {
	return Filter{Property: f.property, UniqueID: &c}
}

// Equals matches IDs with number v.
func (f UniqueIDFilter) Equals(v float64) Filter { return f.condition(NumberCondition{Equals: &v}) }

// DoesNotEqual matches IDs with a number other than v.
func (f UniqueIDFilter) DoesNotEqual(v float64) Filter {
	return f.condition(NumberCondition{DoesNotEqual: &v})
}

// GreaterThan matches IDs numbered above v.
func (f UniqueIDFilter) GreaterThan(v float64) Filter {
	return f.condition(NumberCondition{GreaterThan: &v})
}

// LessThan matches IDs numbered below v.
func (f UniqueIDFilter) LessThan(v float64) Filter {
	return f.condition(NumberCondition{LessThan: &v})
}

// TimestampFilter builds conditions on created_time or last_edited_time.
type TimestampFilter struct{ timestamp string }

// CreatedTime starts a filter on the page creation timestamp.
func CreatedTime() TimestampFilter { return TimestampFilter{"created_time"} }

// LastEditedTime starts a filter on the page last-edit timestamp.
func LastEditedTime() TimestampFilter { return TimestampFilter{"last_edited_time"} }

func (f TimestampFilter) condition(c DateCondition) Filter {
	filter := Filter{Timestamp: f.timestamp}
	if f.timestamp == "created_time" {
		filter.CreatedTime = &c
	} else {
		filter.LastEditedTime = &c
	}
	return filter
}

// Before matches timestamps strictly before v.
func (f TimestampFilter) Before(v DateInput) Filter {
	s := dateString(v)
	return f.condition(DateCondition{Before: &s})
}

// After matches timestamps strictly after v.
func (f TimestampFilter) After(v DateInput) Filter {
	s := dateString(v)
	return f.condition(DateCondition{After: &s})
}

// OnOrBefore matches timestamps on or before v.
func (f TimestampFilter) OnOrBefore(v DateInput) Filter {
	s := dateString(v)
	return f.condition(DateCondition{OnOrBefore: &s})
}

// OnOrAfter matches timestamps on or after v.
func (f TimestampFilter) OnOrAfter(v DateInput) Filter {
	s := dateString(v)
	return f.condition(DateCondition{OnOrAfter: &s})
}

// PastWeek matches timestamps within the past week.
func (f TimestampFilter) PastWeek() Filter {
	return f.condition(DateCondition{PastWeek: &EmptyObject{}})
}
