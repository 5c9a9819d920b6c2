package order

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HenTyna/foot-auto-poll-bot/internal/core"
)

// FormatSummary renders the consolidated order for the chat, cart header
// first, then one line per item, then per-voter detail. Items follow the
// catalog order so the text matches the posted menu.
func FormatSummary(summary core.OrderSummary, orderName string, catalog []string) string {
	if len(summary.Items) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛒 Name: %s\n", orderName)
	b.WriteString("------------------\n")

	for _, item := range catalogOrder(summary.Items, catalog) {
		fmt.Fprintf(&b, "- %s x%d\n", item, summary.Items[item])
	}
	b.WriteString("------------------")

	if len(summary.ByParticipant) > 0 {
		b.WriteString("\n")
		for _, participant := range sortedParticipants(summary.ByParticipant) {
			detail := summary.ByParticipant[participant]
			var parts []string
			for _, item := range catalogOrder(detail.Quantities, catalog) {
				parts = append(parts, fmt.Sprintf("%s x%d", item, detail.Quantities[item]))
			}
			fmt.Fprintf(&b, "👤 %s: %s\n", detail.Name, strings.Join(parts, ", "))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatCombined renders the live tally shown under the menu keyboard.
func FormatCombined(view map[string]int, catalog []string) string {
	items := catalogOrder(view, catalog)
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s: %d", item, view[item]))
	}
	return strings.Join(lines, "\n")
}

// catalogOrder returns the keys of counts in catalog order, with any keys
// missing from the catalog appended alphabetically.
func catalogOrder(counts map[string]int, catalog []string) []string {
	var ordered []string
	seen := make(map[string]bool, len(counts))

	for _, item := range catalog {
		if _, ok := counts[item]; ok && !seen[item] {
			ordered = append(ordered, item)
			seen[item] = true
		}
	}

	var rest []string
	for item := range counts {
		if !seen[item] {
			rest = append(rest, item)
		}
	}
	sort.Strings(rest)

	return append(ordered, rest...)
}

func sortedParticipants(byParticipant map[int64]core.ParticipantOrder) []int64 {
	ids := make([]int64, 0, len(byParticipant))
	for id := range byParticipant {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func anonymousName(participant int64) string {
	return fmt.Sprintf("User%d", participant)
}
