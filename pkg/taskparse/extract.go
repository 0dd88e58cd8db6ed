package taskparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskflow-pro/pkg/datemath"
)

// Extract turns a free-form sentence into a TaskDraft. Date phrases resolve
// against ref in ref's own location. Extract never fails; unrecognised text
// falls through to the title.
func Extract(input string, ref time.Time) TaskDraft {
	text := strings.TrimSpace(input)
	text = commandPrefixRe.ReplaceAllString(text, "")

	text, priority := extractPriority(text)
	category := classify(text)
	text, dueTime := extractTime(text)
	text, dueDate := extractDate(text, ref)

	return TaskDraft{
		Title:    cleanTitle(text),
		Priority: priority,
		Category: category,
		DueDate:  dueDate,
		DueTime:  dueTime,
	}
}

// ExtractNow is Extract relative to the current local time.
func ExtractNow(input string) TaskDraft {
	return Extract(input, time.Now())
}

// IsCommand reports whether input opens with a creation verb such as
// "add" or "remind".
func IsCommand(input string) bool {
	return commandVerbRe.MatchString(strings.TrimSpace(input))
}

func extractPriority(text string) (string, Priority) {
	if loc := highPriorityRe.FindStringIndex(text); loc != nil {
		return cut(text, loc), PriorityHigh
	}
	if loc := lowPriorityRe.FindStringIndex(text); loc != nil {
		return cut(text, loc), PriorityLow
	}
	return text, PriorityMedium
}

func classify(text string) Category {
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(text) {
			return rule.category
		}
	}
	return CategoryPersonal
}

// extractTime consumes the first "at|by H[:MM][am|pm]" phrase. A phrase
// that converts to an impossible clock value is left in the text.
func extractTime(text string) (string, string) {
	m := timeRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, ""
	}

	hour, _ := strconv.Atoi(text[m[2]:m[3]])
	minute := 0
	if m[4] >= 0 {
		minute, _ = strconv.Atoi(text[m[4]:m[5]])
	}
	if m[6] >= 0 {
		switch strings.ToLower(text[m[6]:m[7]]) {
		case "pm":
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
	}

	if hour > 23 || minute > 59 {
		return text, ""
	}

	return cut(text, m[:2]), fmt.Sprintf("%02d:%02d", hour, minute)
}

// extractDate consumes the first recognised date phrase and resolves it in
// ref's location.
func extractDate(text string, ref time.Time) (string, string) {
	for _, re := range dateRules {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		day, err := datemath.NewParserIn(ref.Location()).Parse(text[loc[0]:loc[1]], ref)
		if err != nil {
			return text, ""
		}
		return cut(text, loc), datemath.FormatDate(day)
	}
	return text, ""
}

func cleanTitle(text string) string {
	title := strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	title = strings.TrimSpace(trailingPunctRe.ReplaceAllString(title, ""))
	if title == "" {
		return Placeholder
	}
	return title
}

func cut(text string, loc []int) string {
	return text[:loc[0]] + text[loc[1]:]
}
