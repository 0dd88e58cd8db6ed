package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"taskflow-pro/internal/chat"
	"taskflow-pro/pkg/taskparse"
)

type intentRule struct {
	intent chat.Intent
	match  func(string) bool
}

func pattern(expr string) func(string) bool {
	return regexp.MustCompile(expr).MatchString
}

// intentRules are tried in order against the lower-cased message.
var intentRules = []intentRule{
	{chat.IntentGreeting, pattern(`^(?:hi|hello|hey|good\s+(?:morning|afternoon|evening)|howdy|sup|what'?s?\s*up)\b`)},
	{chat.IntentHelp, pattern(`^(?:help|what can you do|commands|features|how to use)`)},
	{chat.IntentCommand, taskparse.IsCommand},
	{chat.IntentMotivation, pattern(`\b(?:motivat\w*|inspir\w*|encourag\w*|quotes?|boost)\b`)},
	{chat.IntentTip, pattern(`\b(?:tips?|advice|suggest\w*|productiv\w*|better|improve|hacks?)\b`)},
	{chat.IntentToday, pattern(`\b(?:today|summary|what.*do.*today|my.*tasks|what.*plate|pending|schedule)\b`)},
	{chat.IntentOverdue, pattern(`\b(?:overdue|late|missed|past\s*due|behind)\b`)},
	{chat.IntentStats, pattern(`\b(?:how.*doing|stats|progress|performance|analytics|status)\b`)},
	{chat.IntentThanks, pattern(`\b(?:thank|thanks|thx|appreciate)\b`)},
	{chat.IntentGoodbye, pattern(`\b(?:bye|goodbye|see you|later|quit|exit)\b`)},
}

const (
	minFallbackInput = 3
	minFallbackTitle = 2
)

// detect returns the first matching intent. Longer unmatched messages that
// still yield a usable title become a task suggestion.
func detect(text string) chat.Intent {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, r := range intentRules {
		if r.match(lower) {
			return r.intent
		}
	}

	if utf8.RuneCountInString(lower) > minFallbackInput {
		draft := taskparse.ExtractNow(text)
		if utf8.RuneCountInString(draft.Title) > minFallbackTitle {
			return chat.IntentFallback
		}
	}
	return chat.IntentUnknown
}
