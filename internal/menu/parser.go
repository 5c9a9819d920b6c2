package menu

import (
	"regexp"
	"strings"
)

// Menus are announced with the Khmer "today's food" prefix
const menuPrefix = "ម្ហូបថ្ងៃ"

// Numbered menu lines: Khmer digits ១–៦ or ASCII 1–6, a dot, then the item
var numberedLine = regexp.MustCompile(`^[១២៣៤៥៦1-6]\.\s*(.+)$`)

// IsMenuText reports whether the text looks like a daily food menu.
func IsMenuText(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	if strings.HasPrefix(text, menuPrefix) {
		return true
	}

	count := 0
	for _, line := range strings.Split(text, "\n") {
		if numberedLine.MatchString(strings.TrimSpace(line)) {
			count++
		}
	}
	return count >= 2
}

// ExtractItems returns the ordered, de-duplicated item names found in
// numbered lines. First occurrence wins.
func ExtractItems(text string) []string {
	var items []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		m := numberedLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		item := strings.TrimSpace(m[1])
		if item == "" || seen[item] {
			continue
		}

		seen[item] = true
		items = append(items, item)
	}

	return items
}
