package feed

import (
	"strings"

	"github.com/umputun/ainews/pkg/domain"
)

// keyword groups checked in order, first match wins
var (
	modelKeywords = []string{"gpt", "claude", "gemini", "llama", "model"}
	toolKeywords  = []string{"tool", "sdk", "api", "github", "code"}
)

// Categorize assigns a category by substring match on lowercased title+summary.
// Model keywords take priority over tool keywords, anything else is industry news.
func Categorize(title, summary string) domain.Category {
	text := strings.ToLower(title + summary)
	switch {
	case containsAny(text, modelKeywords):
		return domain.CategoryModelRelease
	case containsAny(text, toolKeywords):
		return domain.CategoryDevTools
	default:
		return domain.CategoryIndustry
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
