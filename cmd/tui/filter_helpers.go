package tui

import (
	"fmt"
	"strings"
)

// filterSpec is the parsed form of the calls filter input. Status and
// Sentiment map to list query parameters; Query routes the page fetch
// through the NLP search endpoint instead.
type filterSpec struct {
	Status    string
	Sentiment string
	Query     string
}

// Empty reports whether no filter is active
func (f filterSpec) Empty() bool {
	return f.Status == "" && f.Sentiment == "" && f.Query == ""
}

// Describe renders the filter the way the page fetch applies it: free
// text wins and is searched, structured tokens only matter without it.
func (f filterSpec) Describe() string {
	if f.Empty() {
		return ""
	}
	if f.Query != "" {
		return fmt.Sprintf("search: %q", f.Query)
	}

	parts := make([]string, 0, 2)
	if f.Status != "" {
		parts = append(parts, "status:"+f.Status)
	}
	if f.Sentiment != "" {
		parts = append(parts, "sentiment:"+f.Sentiment)
	}
	return strings.Join(parts, " ")
}

// parseFilter splits the filter input into status:/sentiment: tokens and
// free text. Repeated tokens keep the last value; anything that is not a
// recognized token becomes part of the free-text query.
func parseFilter(input string) filterSpec {
	var spec filterSpec
	var free []string

	for _, token := range strings.Fields(input) {
		switch {
		case strings.HasPrefix(token, "status:"):
			spec.Status = strings.ToLower(strings.TrimPrefix(token, "status:"))
		case strings.HasPrefix(token, "sentiment:"):
			spec.Sentiment = strings.ToLower(strings.TrimPrefix(token, "sentiment:"))
		default:
			free = append(free, token)
		}
	}

	spec.Query = strings.Join(free, " ")
	return spec
}
