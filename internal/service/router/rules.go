package router

import (
	"regexp"
	"strings"
)

// Classification is ordered, first match wins. The order is a contract:
// the bare-expression shortcut must never shadow the time rule for
// utterances that contain "time"/"date"/"now" alongside digits, and the
// memory rules own their lead-in tokens before arithmetic gets a look.
var (
	greetingRe = regexp.MustCompile(`(?i)^\s*(hi|hello|hey|hola|namaste|good\s*(morning|afternoon|evening)?)\b`)
	rememberRe = regexp.MustCompile(`(?i)^\s*(?:remember|save)\s+(.+?)\s*=\s*(.+?)\s*$`)
	recallRe   = regexp.MustCompile(`(?i)^\s*(?:recall|what did i save for)\s+(.+?)\s*$`)
	timeRe     = regexp.MustCompile(`(?i)\b(time|date|now)\b`)
	calcLeadRe = regexp.MustCompile(`(?i)^\s*calculate\s+(.+)$`)
	bareExprRe = regexp.MustCompile(`^[\d.\s+\-*/()%]+$`)
	followupRe = regexp.MustCompile(`(?i)\b(explain (this|that)|in brief|briefly|why|how so)\b`)
)

func matchGreeting(text string) ([]string, bool) {
	return nil, greetingRe.MatchString(text)
}

func matchRemember(text string) ([]string, bool) {
	m := rememberRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return m[1:], true // key, value
}

func matchRecall(text string) ([]string, bool) {
	m := recallRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return m[1:], true // key
}

func matchTime(text string) ([]string, bool) {
	return nil, timeRe.MatchString(text)
}

// matchCalculate accepts either an explicit "calculate <expr>" lead-in
// or, as a shortcut, an utterance made up entirely of expression
// characters.
func matchCalculate(text string) ([]string, bool) {
	if m := calcLeadRe.FindStringSubmatch(text); m != nil {
		return []string{m[1]}, true
	}
	if text != "" && bareExprRe.MatchString(text) {
		return []string{strings.TrimSpace(text)}, true
	}
	return nil, false
}

func matchFollowup(text string) ([]string, bool) {
	return nil, followupRe.MatchString(text)
}
