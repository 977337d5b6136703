package docmgr

import (
	"fmt"
	"strings"
	"time"
)

// ImportStatus is the outcome of one import.
type ImportStatus string

const (
	StatusLoaded  ImportStatus = "loaded"
	StatusCached  ImportStatus = "cached"
	StatusFailed  ImportStatus = "failed"
	StatusIgnored ImportStatus = "ignored"
)

// ImportResult captures what happened to one imported document.
type ImportResult struct {
	// URI is the normalised document URI.
	URI string `json:"uri"`

	// Location is where the document was read from, after alt-URL mapping.
	Location string `json:"location"`

	// Depth is the traversal depth at which the import was found; imports
	// of the root document are at depth 1.
	Depth int `json:"depth"`

	Status ImportStatus `json:"status"`

	// Triples is the size of the imported graph.
	Triples int `json:"triples"`

	Error string `json:"error,omitempty"`

	LoadedAt time.Time `json:"loaded_at"`
}

// ReadState accumulates the outcome of an import traversal.
type ReadState struct {
	// Root is the URI of the document whose imports are traversed.
	Root string `json:"root"`

	LoadedCount  int `json:"loaded_count"`
	CachedCount  int `json:"cached_count"`
	FailedCount  int `json:"failed_count"`
	IgnoredCount int `json:"ignored_count"`

	// TriplesAdded is the total size of the graphs added to the model.
	TriplesAdded int `json:"triples_added"`

	Results []ImportResult `json:"results"`
}

// NewReadState starts a traversal record for root.
func NewReadState(root string) *ReadState {
	return &ReadState{Root: root}
}

func (state *ReadState) record(result ImportResult) {
	result.LoadedAt = time.Now()
	switch result.Status {
	case StatusLoaded:
		state.LoadedCount++
		state.TriplesAdded += result.Triples
	case StatusCached:
		state.CachedCount++
		state.TriplesAdded += result.Triples
	case StatusFailed:
		state.FailedCount++
	case StatusIgnored:
		state.IgnoredCount++
	}
	state.Results = append(state.Results, result)
}

// URIs returns the URIs of the imports that were added, in traversal
// order.
func (state *ReadState) URIs() []string {
	var uris []string
	for _, r := range state.Results {
		if r.Status == StatusLoaded || r.Status == StatusCached {
			uris = append(uris, r.URI)
		}
	}
	return uris
}

// String returns a CLI-friendly summary of the traversal.
func (state *ReadState) String() string {
	var summaryBuilder strings.Builder

	summaryBuilder.WriteString("Import Report:\n")
	if state.Root != "" {
		summaryBuilder.WriteString(fmt.Sprintf("  Root document:   %s\n", state.Root))
	}
	summaryBuilder.WriteString(fmt.Sprintf("  Loaded:          %d\n", state.LoadedCount))
	summaryBuilder.WriteString(fmt.Sprintf("  From cache:      %d\n", state.CachedCount))
	summaryBuilder.WriteString(fmt.Sprintf("  Failed:          %d\n", state.FailedCount))
	summaryBuilder.WriteString(fmt.Sprintf("  Ignored:         %d\n", state.IgnoredCount))
	if state.TriplesAdded > 0 {
		summaryBuilder.WriteString(fmt.Sprintf("  Triples added:   %d\n", state.TriplesAdded))
	}

	if len(state.Results) > 0 {
		summaryBuilder.WriteString("\n  Imports:\n")
		for _, result := range state.Results {
			statusIndicator := "+"
			switch result.Status {
			case StatusCached:
				statusIndicator = "c"
			case StatusFailed:
				statusIndicator = "-"
			case StatusIgnored:
				statusIndicator = "i"
			}

			detail := ""
			if result.Error != "" {
				detail = fmt.Sprintf(" (%s)", result.Error)
			}

			summaryBuilder.WriteString(fmt.Sprintf("    [%s] %s%s%s\n",
				statusIndicator,
				strings.Repeat("  ", max(result.Depth-1, 0)),
				result.URI,
				detail,
			))
		}
	}

	return summaryBuilder.String()
}

// ToMarkdown returns a Markdown table of the traversal.
func (state *ReadState) ToMarkdown() string {
	var markdownBuilder strings.Builder

	markdownBuilder.WriteString("## Import Report\n\n")
	markdownBuilder.WriteString("| Metric | Count |\n")
	markdownBuilder.WriteString("|---|---|\n")
	markdownBuilder.WriteString(fmt.Sprintf("| Loaded | %d |\n", state.LoadedCount))
	markdownBuilder.WriteString(fmt.Sprintf("| Cached | %d |\n", state.CachedCount))
	markdownBuilder.WriteString(fmt.Sprintf("| Failed | %d |\n", state.FailedCount))
	markdownBuilder.WriteString(fmt.Sprintf("| Ignored | %d |\n", state.IgnoredCount))
	markdownBuilder.WriteString(fmt.Sprintf("| Triples added | %d |\n", state.TriplesAdded))

	if len(state.Results) > 0 {
		markdownBuilder.WriteString("\n### Imports\n\n")
		markdownBuilder.WriteString("| URI | Depth | Status |\n")
		markdownBuilder.WriteString("|---|---|---|\n")
		for _, result := range state.Results {
			status := string(result.Status)
			if result.Error != "" {
				status = result.Error
			}
			markdownBuilder.WriteString(fmt.Sprintf("| %s | %d | %s |\n", result.URI, result.Depth, status))
		}
	}

	return markdownBuilder.String()
}
