package notion

import (
	"time"
)

// EmptyObject marshals to {} for variants that carry no configuration.
type EmptyObject struct{}

// Date represents a date or date range, optionally time-zoned. Start and End
// are ISO 8601; a date-only start ("2024-01-02") and a datetime start are
// both valid.
type Date struct {
	Start    string  `json:"start"`
	End      *string `json:"end,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// NewDate returns a date-only Date.
func NewDate(t time.Time) Date {
	return Date{Start: t.Format("2006-01-02")}
}

// NewDateTime returns a Date carrying the full timestamp.
func NewDateTime(t time.Time) Date {
	return Date{Start: t.Format(time.RFC3339)}
}

// NewDateRange returns a Date spanning start to end.
func NewDateRange(start, end time.Time) Date {
	e := end.Format("2006-01-02")
	return Date{Start: start.Format("2006-01-02"), End: &e}
}

func (d Date) String() string {
	if d.End != nil {
		return d.Start + " → " + *d.End
	}
	return d.Start
}

// FileType discriminates the file object variants.
type FileType string

const (
	FileTypeExternal   FileType = "external"
	FileTypeFile       FileType = "file"
	FileTypeFileUpload FileType = "file_upload"
)

// File represents a file object: externally hosted, Notion-hosted, or a
// reference to a completed file upload.
type File struct {
	Type       FileType         `json:"type,omitempty"`
	Name       string           `json:"name,omitempty"`
	Caption    []RichText       `json:"caption,omitempty"`
	External   *External        `json:"external,omitempty"`
	File       *HostedFile      `json:"file,omitempty"`
	FileUpload *ObjectReference `json:"file_upload,omitempty"`
}

// ExternalFile returns a file object pointing at an external URL.
func ExternalFile(url string) *File {
	return &File{Type: FileTypeExternal, External: &External{URL: url}}
}

// UploadedFile returns a file object referencing a completed file upload.
func UploadedFile(fileUploadID string) *File {
	return &File{Type: FileTypeFileUpload, FileUpload: &ObjectReference{ID: fileUploadID}}
}

// URLValue returns the resolvable URL of the file, regardless of variant.
func (f *File) URLValue() string {
	switch {
	case f.External != nil:
		return f.External.URL
	case f.File != nil:
		return f.File.URL
	default:
		return ""
	}
}

// External represents an externally hosted file.
type External struct {
	URL string `json:"url"`
}

// HostedFile represents a Notion-hosted file with an expiring URL.
type HostedFile struct {
	URL        string    `json:"url"`
	ExpiryTime time.Time `json:"expiry_time"`
}

// IconType discriminates the icon variants.
type IconType string

const (
	IconTypeEmoji    IconType = "emoji"
	IconTypeExternal IconType = "external"
	IconTypeFile     IconType = "file"
)

// Icon represents a page or callout icon: an emoji or a file.
type Icon struct {
	Type     IconType    `json:"type"`
	Emoji    string      `json:"emoji,omitempty"`
	External *External   `json:"external,omitempty"`
	File     *HostedFile `json:"file,omitempty"`
}

// EmojiIcon returns an emoji icon.
func EmojiIcon(emoji string) *Icon {
	return &Icon{Type: IconTypeEmoji, Emoji: emoji}
}

// ExternalIcon returns an icon backed by an external image URL.
func ExternalIcon(url string) *Icon {
	return &Icon{Type: IconTypeExternal, External: &External{URL: url}}
}
