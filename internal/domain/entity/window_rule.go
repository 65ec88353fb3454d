package entity

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// WindowRuleEvent is the trigger a window rule subscribes to.
type WindowRuleEvent string

const (
	RuleEventManage      WindowRuleEvent = "manage"
	RuleEventFocus       WindowRuleEvent = "focus"
	RuleEventTitleChange WindowRuleEvent = "title_change"
)

// ParseWindowRuleEvent validates an event name.
func ParseWindowRuleEvent(s string) (WindowRuleEvent, error) {
	switch e := WindowRuleEvent(s); e {
	case RuleEventManage, RuleEventFocus, RuleEventTitleChange:
		return e, nil
	default:
		return "", fmt.Errorf("unknown window rule event %q", s)
	}
}

// StringMatcher matches a window property exactly, or by regular expression
// when the pattern is wrapped in slashes ("/^term/"). The zero value matches
// everything.
type StringMatcher struct {
	pattern string
	re      *regexp.Regexp
}

// NewStringMatcher compiles a matcher pattern.
func NewStringMatcher(pattern string) (StringMatcher, error) {
	if len(pattern) >= 2 && strings.HasPrefix(pattern, "/") && strings.HasSuffix(pattern, "/") {
		re, err := regexp.Compile(pattern[1 : len(pattern)-1])
		if err != nil {
			return StringMatcher{}, fmt.Errorf("compile matcher %q: %w", pattern, err)
		}
		return StringMatcher{pattern: pattern, re: re}, nil
	}
	return StringMatcher{pattern: pattern}, nil
}

// Matches reports whether s satisfies the matcher.
func (m StringMatcher) Matches(s string) bool {
	switch {
	case m.pattern == "":
		return true
	case m.re != nil:
		return m.re.MatchString(s)
	default:
		return m.pattern == s
	}
}

func (m StringMatcher) String() string {
	return m.pattern
}

// WindowMatch selects windows by their native properties. Every non-empty
// matcher must match.
type WindowMatch struct {
	Class   StringMatcher
	Title   StringMatcher
	Process StringMatcher
}

// Matches reports whether the native window satisfies every matcher.
func (m WindowMatch) Matches(w NativeWindow) bool {
	return m.Class.Matches(w.ClassName) &&
		m.Title.Matches(w.Title) &&
		m.Process.Matches(w.ProcessName)
}

// WindowRule runs a list of commands against windows that match it when
// one of its events fires.
type WindowRule struct {
	Name     string
	On       []WindowRuleEvent
	Commands []string
	RunOnce  bool
	Match    WindowMatch
}

// Pending reports whether the rule should run for the window on event:
// it subscribes to the event, matches the window and, when run-once, has
// not already been applied to it.
func (r WindowRule) Pending(w WindowContainer, event WindowRuleEvent) bool {
	if !slices.Contains(r.On, event) {
		return false
	}
	if r.RunOnce && w.HasRunRule(r.Name) {
		return false
	}
	return r.Match.Matches(w.Native)
}
