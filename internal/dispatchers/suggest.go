package dispatchers

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	defaultSuggestionsCount = 3
	maxSuggestionDistance   = 3
)

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults command names within a small
// edit distance of input, closest first. Matching ignores case.
func FindSimilarCommands(input string, reg *Registry, maxResults int) []string {
	if reg == nil || input == "" {
		return nil
	}

	var suggestions []suggestion
	for _, name := range reg.Names() {
		if name == input {
			continue
		}
		dist := levenshtein.ComputeDistance(strings.ToLower(input), strings.ToLower(name))
		if dist <= maxSuggestionDistance {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	// Sort by distance, then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
