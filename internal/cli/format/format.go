package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/longkey1/notiongo/notion"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
)

// Formatter handles output formatting
type Formatter struct {
	format OutputFormat
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(format OutputFormat, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// FormatPage formats a single page
func (f *Formatter) FormatPage(page *notion.Page) error {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(page)
	case FormatTable:
		return f.formatPageTable(page)
	default:
		return f.formatPageText(page)
	}
}

// FormatPages formats multiple pages
func (f *Formatter) FormatPages(pages []notion.Page, nextCursor string, hasMore bool) error {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(map[string]interface{}{
			"results":     pages,
			"next_cursor": nextCursor,
			"has_more":    hasMore,
		})
	case FormatText:
		return f.formatPagesText(pages, nextCursor, hasMore)
	default:
		return f.formatPagesTable(pages, nextCursor, hasMore)
	}
}

// FormatSearchResults formats search hits
func (f *Formatter) FormatSearchResults(results []notion.SearchResult, nextCursor string, hasMore bool) error {
	if f.format == FormatJSON {
		return f.formatJSON(map[string]interface{}{
			"results":     results,
			"next_cursor": nextCursor,
			"has_more":    hasMore,
		})
	}

	headers := []string{"Type", "Title", "ID"}
	var rows [][]string
	for _, result := range results {
		title := result.Title()
		if title == "" {
			title = "(Untitled)"
		}
		id := ""
		switch {
		case result.Page != nil:
			id = result.Page.ID
		case result.DataSource != nil:
			id = result.DataSource.ID
		}
		rows = append(rows, []string{result.Object, truncate(title, 50), id})
	}

	if err := f.printTable(headers, rows); err != nil {
		return err
	}
	f.printCursor(nextCursor, hasMore)
	return nil
}

// FormatUsers formats a user list
func (f *Formatter) FormatUsers(users []notion.User) error {
	if f.format == FormatJSON {
		return f.formatJSON(users)
	}

	headers := []string{"Name", "Type", "ID"}
	var rows [][]string
	for _, user := range users {
		rows = append(rows, []string{user.Name, string(user.Type), user.ID})
	}
	return f.printTable(headers, rows)
}

// formatJSON outputs as JSON
func (f *Formatter) formatJSON(v interface{}) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// formatPageText formats a page as text
func (f *Formatter) formatPageText(page *notion.Page) error {
	title := page.Title()
	if title == "" {
		title = "(Untitled)"
	}

	fmt.Fprintf(f.writer, "Title: %s\n", title)
	fmt.Fprintf(f.writer, "ID: %s\n", page.ID)
	fmt.Fprintf(f.writer, "URL: %s\n", page.URL)
	fmt.Fprintf(f.writer, "Created: %s\n", page.CreatedTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(f.writer, "Last edited: %s\n", page.LastEditedTime.Format("2006-01-02 15:04:05"))

	if page.Icon != nil && page.Icon.Type == notion.IconTypeEmoji {
		fmt.Fprintf(f.writer, "Icon: %s\n", page.Icon.Emoji)
	}

	fmt.Fprintln(f.writer, "\nProperties:")
	for name, prop := range page.Properties {
		if prop.Type == notion.PropertyTypeTitle {
			continue // Already shown as title
		}
		value := PropertyString(prop)
		if value != "" {
			fmt.Fprintf(f.writer, "  %s: %s\n", name, value)
		}
	}

	return nil
}

// formatPageTable formats a page as a table
func (f *Formatter) formatPageTable(page *notion.Page) error {
	title := page.Title()
	if title == "" {
		title = "(Untitled)"
	}

	rows := [][]string{
		{"Title", title},
		{"ID", page.ID},
		{"URL", page.URL},
		{"Created", page.CreatedTime.Format("2006-01-02 15:04:05")},
		{"Last edited", page.LastEditedTime.Format("2006-01-02 15:04:05")},
	}

	for name, prop := range page.Properties {
		if prop.Type == notion.PropertyTypeTitle {
			continue
		}
		value := PropertyString(prop)
		if value != "" {
			rows = append(rows, []string{name, value})
		}
	}

	return f.printTable([]string{"Property", "Value"}, rows)
}

// formatPagesText formats pages as text
func (f *Formatter) formatPagesText(pages []notion.Page, nextCursor string, hasMore bool) error {
	for i, page := range pages {
		if i > 0 {
			fmt.Fprintln(f.writer, "---")
		}
		title := page.Title()
		if title == "" {
			title = "(Untitled)"
		}
		fmt.Fprintf(f.writer, "%s\n", title)
		fmt.Fprintf(f.writer, "  ID: %s\n", page.ID)
		fmt.Fprintf(f.writer, "  URL: %s\n", page.URL)
		fmt.Fprintf(f.writer, "  Last edited: %s\n", page.LastEditedTime.Format("2006-01-02 15:04:05"))
	}

	f.printCursor(nextCursor, hasMore)
	return nil
}

// formatPagesTable formats pages as a table
func (f *Formatter) formatPagesTable(pages []notion.Page, nextCursor string, hasMore bool) error {
	headers := []string{"Title", "ID", "Last Edited"}
	var rows [][]string

	for _, page := range pages {
		title := page.Title()
		if title == "" {
			title = "(Untitled)"
		}
		rows = append(rows, []string{
			truncate(title, 50),
			page.ID,
			page.LastEditedTime.Format("2006-01-02 15:04"),
		})
	}

	if err := f.printTable(headers, rows); err != nil {
		return err
	}

	f.printCursor(nextCursor, hasMore)
	return nil
}

func (f *Formatter) printCursor(nextCursor string, hasMore bool) {
	if hasMore && nextCursor != "" {
		fmt.Fprintf(f.writer, "\n(More results available. Use --cursor %s to continue)\n", nextCursor)
	}
}

// PropertyString renders a property value for display.
func PropertyString(prop notion.PropertyValue) string {
	switch prop.Type {
	case notion.PropertyTypeTitle:
		return notion.PlainText(prop.Title)
	case notion.PropertyTypeRichText:
		return notion.PlainText(prop.RichText)
	case notion.PropertyTypeNumber:
		if prop.Number != nil {
			return strconv.FormatFloat(*prop.Number, 'f', -1, 64)
		}
	case notion.PropertyTypeSelect:
		if prop.Select != nil {
			return prop.Select.Name
		}
	case notion.PropertyTypeMultiSelect:
		var names []string
		for _, opt := range prop.MultiSelect {
			names = append(names, opt.Name)
		}
		return strings.Join(names, ", ")
	case notion.PropertyTypeStatus:
		if prop.Status != nil {
			return prop.Status.Name
		}
	case notion.PropertyTypeDate:
		if prop.Date != nil {
			return prop.Date.String()
		}
	case notion.PropertyTypePeople:
		var names []string
		for _, user := range prop.People {
			names = append(names, user.Name)
		}
		return strings.Join(names, ", ")
	case notion.PropertyTypeCheckbox:
		if prop.Checkbox != nil {
			return strconv.FormatBool(*prop.Checkbox)
		}
	case notion.PropertyTypeURL:
		if prop.URL != nil {
			return *prop.URL
		}
	case notion.PropertyTypeEmail:
		if prop.Email != nil {
			return *prop.Email
		}
	case notion.PropertyTypePhoneNumber:
		if prop.PhoneNumber != nil {
			return *prop.PhoneNumber
		}
	case notion.PropertyTypeUniqueID:
		if prop.UniqueID != nil {
			return prop.UniqueID.String()
		}
	case notion.PropertyTypeCreatedTime:
		if prop.CreatedTime != nil {
			return prop.CreatedTime.Format("2006-01-02 15:04:05")
		}
	case notion.PropertyTypeLastEditedTime:
		if prop.LastEditedTime != nil {
			return prop.LastEditedTime.Format("2006-01-02 15:04:05")
		}
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// printTable prints a simple table
func (f *Formatter) printTable(headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return nil
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	f.printRow(headers, widths)
	f.printSeparator(widths)

	for _, row := range rows {
		f.printRow(row, widths)
	}

	return nil
}

// printRow prints a table row
func (f *Formatter) printRow(cells []string, widths []int) {
	for i, cell := range cells {
		if i < len(widths) {
			fmt.Fprintf(f.writer, "%-*s", widths[i], cell)
			if i < len(cells)-1 {
				fmt.Fprint(f.writer, "  ")
			}
		}
	}
	fmt.Fprintln(f.writer)
}

// printSeparator prints a table separator
func (f *Formatter) printSeparator(widths []int) {
	for i, w := range widths {
		fmt.Fprint(f.writer, strings.Repeat("-", w))
		if i < len(widths)-1 {
			fmt.Fprint(f.writer, "  ")
		}
	}
	fmt.Fprintln(f.writer)
}
