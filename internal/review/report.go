package review

import (
	"fmt"
	"path/filepath"
	"strings"
)

var categoryMax = map[string]int{
	"naming":         10,
	"modularity":     20,
	"comments":       20,
	"formatting":     15,
	"reusability":    15,
	"best_practices": 20,
}

// categoryOrder fixes the breakdown listing so reports are stable
var categoryOrder = []string{
	"naming", "modularity", "comments", "formatting", "reusability", "best_practices",
}

func categoryScore(b Breakdown, category string) int {
	switch category {
	case "naming":
		return b.Naming
	case "modularity":
		return b.Modularity
	case "comments":
		return b.Comments
	case "formatting":
		return b.Formatting
	case "reusability":
		return b.Reusability
	case "best_practices":
		return b.BestPractices
	}
	return 0
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatFileComment renders one file's score card as GitHub-flavored Markdown
func FormatFileComment(path string, card *ScoreCard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Code Quality Analysis: %s\n\n", filepath.Base(path))
	fmt.Fprintf(&b, "**Overall Score**: %d/100\n\n", card.OverallScore)

	b.WriteString("### Score Breakdown\n\n")
	for _, category := range categoryOrder {
		fmt.Fprintf(&b, "- **%s**: %d/%d\n",
			capitalize(category), categoryScore(card.Breakdown, category), categoryMax[category])
	}
	b.WriteString("\n")

	if len(card.Recommendations) > 0 {
		b.WriteString("### Recommendations\n\n")
		for i, rec := range card.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	return b.String()
}

// FormatPrintable renders a score card for terminal output
func FormatPrintable(path string, card *ScoreCard) string {
	var b strings.Builder

	rule := strings.Repeat("=", 50)
	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "CODE ANALYSIS RESULTS: %s\n", filepath.Base(path))
	fmt.Fprintf(&b, "%s\n", rule)

	fmt.Fprintf(&b, "\nOverall Score: %d/100\n", card.OverallScore)
	b.WriteString("\nBreakdown:\n")
	fmt.Fprintf(&b, "  Naming Conventions:      %d/10\n", card.Breakdown.Naming)
	fmt.Fprintf(&b, "  Function/Modularity:     %d/20\n", card.Breakdown.Modularity)
	fmt.Fprintf(&b, "  Comments/Documentation:  %d/20\n", card.Breakdown.Comments)
	fmt.Fprintf(&b, "  Formatting/Indentation:  %d/15\n", card.Breakdown.Formatting)
	fmt.Fprintf(&b, "  Reusability/DRY:         %d/15\n", card.Breakdown.Reusability)
	fmt.Fprintf(&b, "  Best Practices:          %d/20\n", card.Breakdown.BestPractices)

	b.WriteString("\nRecommendations:\n")
	for i, rec := range card.Recommendations {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, rec)
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}
