package notion

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var idPattern = regexp.MustCompile(`[0-9a-fA-F]{32}`)

// NormalizeID normalizes a page, block, or database ID by removing hyphens.
// The API accepts both forms in paths; the compact form keeps URLs short.
func NormalizeID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}

// FormatID returns the canonical dashed UUID form of an ID, or the input
// unchanged if it does not parse as a UUID.
func FormatID(id string) string {
	parsed, err := uuid.Parse(NormalizeID(id))
	if err != nil {
		return id
	}
	return parsed.String()
}

// IsValidID reports whether id parses as a UUID in either dashed or compact
// form.
func IsValidID(id string) bool {
	_, err := uuid.Parse(NormalizeID(id))
	return err == nil
}

// ExtractID extracts an object ID from a notion.so URL, a bare dashed UUID,
// or a compact 32-hex ID. The last 32-hex run in the URL path wins, which
// matches how Notion embeds the page ID in share links.
func ExtractID(idOrURL string) string {
	if IsValidID(idOrURL) {
		return NormalizeID(idOrURL)
	}

	parsed, err := url.Parse(idOrURL)
	if err != nil {
		return idOrURL
	}

	matches := idPattern.FindAllString(parsed.Path, -1)
	if len(matches) == 0 {
		return idOrURL
	}
	return strings.ToLower(matches[len(matches)-1])
}
