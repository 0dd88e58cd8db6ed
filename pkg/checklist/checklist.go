// Package checklist reads markdown task lists ("- [ ] item", "- [x] item").
package checklist

import (
	"regexp"
	"strings"
)

// Captures the checkbox state and the item text.
var checkboxRe = regexp.MustCompile(`^\s*[-*+] \[([ xX])\] (.+)$`)

const fence = "```"

// Item is one checkbox line.
type Item struct {
	Text    string
	Checked bool
}

// Parse returns the checkbox items in content. Lines inside fenced code
// blocks are ignored.
func Parse(content string) []Item {
	var items []Item
	walk(content, func(line string, item *Item) {
		if item != nil {
			items = append(items, *item)
		}
	})
	return items
}

// Strip removes checkbox lines from content and trims what is left.
func Strip(content string) string {
	var kept []string
	walk(content, func(line string, item *Item) {
		if item == nil {
			kept = append(kept, line)
		}
	})
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// Progress returns the completed and total item counts.
func Progress(items []Item) (done, total int) {
	for _, it := range items {
		if it.Checked {
			done++
		}
	}
	return done, len(items)
}

func walk(content string, fn func(line string, item *Item)) {
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), fence) {
			inFence = !inFence
			fn(line, nil)
			continue
		}
		if inFence {
			fn(line, nil)
			continue
		}
		m := checkboxRe.FindStringSubmatch(line)
		if m == nil {
			fn(line, nil)
			continue
		}
		text := strings.TrimSpace(m[2])
		if text == "" {
			fn(line, nil)
			continue
		}
		fn(line, &Item{Text: text, Checked: strings.EqualFold(m[1], "x")})
	}
}
