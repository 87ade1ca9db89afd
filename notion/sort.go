package notion

// SortDirection orders query results ascending or descending.
type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// Sort is one sort specification for a data source query: either a property
// sort or a timestamp sort. Multiple sorts apply in order.
type Sort struct {
	Property  string        `json:"property,omitempty"`
	Timestamp string        `json:"timestamp,omitempty"`
	Direction SortDirection `json:"direction"`
}

// SortBy sorts by the named property.
func SortBy(property string, direction SortDirection) Sort {
	return Sort{Property: property, Direction: direction}
}

// SortByCreatedTime sorts by the page creation timestamp.
func SortByCreatedTime(direction SortDirection) Sort {
	return Sort{Timestamp: "created_time", Direction: direction}
}

// SortByLastEditedTime sorts by the page last-edit timestamp.
func SortByLastEditedTime(direction SortDirection) Sort {
	return Sort{Timestamp: "last_edited_time", Direction: direction}
}
