package taskparse

import "regexp"

var (
	commandPrefixRe = regexp.MustCompile(`(?i)^(?:add|create|make|new|set\s+up|schedule)\s+(?:a\s+)?(?:(?:task|todo|to-do|reminder|event)\b)?\s*(?:(?:for|to|about|called|named)\b|:)?\s*`)
	commandVerbRe   = regexp.MustCompile(`(?i)^(?:add|create|make|new|set\s*up|schedule|remind)\b`)

	highPriorityRe = regexp.MustCompile(`(?i)\b(?:urgent|critical|asap|important|high\s*priority)\b`)
	lowPriorityRe  = regexp.MustCompile(`(?i)\b(?:low\s*priority|whenever|no rush|not urgent)\b`)

	timeRe = regexp.MustCompile(`(?i)\b(?:at|by)\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

	todayRe       = regexp.MustCompile(`(?i)\btoday\b`)
	tomorrowRe    = regexp.MustCompile(`(?i)\btomorrow\b`)
	nextWeekRe    = regexp.MustCompile(`(?i)\bnext\s+week\b`)
	nextWeekdayRe = regexp.MustCompile(`(?i)\bnext\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)

	whitespaceRe    = regexp.MustCompile(`\s+`)
	trailingPunctRe = regexp.MustCompile(`[,.\s]+$`)
)

// dateRules are tried in order; only the first matching phrase is consumed.
var dateRules = []*regexp.Regexp{todayRe, tomorrowRe, nextWeekRe, nextWeekdayRe}

type categoryRule struct {
	category Category
	pattern  *regexp.Regexp
}

// categoryRules is scanned in order; the first matching rule wins.
var categoryRules = []categoryRule{
	{CategoryWork, regexp.MustCompile(`(?i)\b(?:work|office|meeting|project|client|boss|deadline|report)\b`)},
	{CategoryHealth, regexp.MustCompile(`(?i)\b(?:health|gym|exercise|run|workout|doctor|meditation|yoga|fitness)\b`)},
	{CategoryEducation, regexp.MustCompile(`(?i)\b(?:study|learn|read|course|class|book|chapter|homework|exam)\b`)},
	{CategoryFinance, regexp.MustCompile(`(?i)\b(?:pay|bill|budget|money|bank|tax|invoice|expense)\b`)},
	{CategorySocial, regexp.MustCompile(`(?i)\b(?:party|birthday|friend|dinner|hangout|event|celebration)\b`)},
}
