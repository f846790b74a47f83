package util

import (
	"regexp"
	"strings"
)

// SearchQuery represents the parsed components of a task search string.
type SearchQuery struct {
	Status   []string
	Priority []string
	Text     []string
}

var (
	statusRegex   = regexp.MustCompile(`status:(\w+)`)
	priorityRegex = regexp.MustCompile(`priority:(\w+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured components.
// Anything that is not a status: or priority: token is treated as free text.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, strings.ToLower(match[1]))
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Status = extract(statusRegex)
	sq.Priority = extract(priorityRegex)
	sq.Text = strings.Fields(query)

	return sq
}

// Empty reports whether the query constrains nothing.
func (q SearchQuery) Empty() bool {
	return len(q.Status) == 0 && len(q.Priority) == 0 && len(q.Text) == 0
}
