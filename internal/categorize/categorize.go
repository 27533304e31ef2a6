// Package categorize assigns QIF categories to bank transactions using
// ordered description rules.
package categorize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Rule maps bank descriptions to a category and, optionally, a cleaner payee.
type Rule struct {
	Match    string `yaml:"match"`
	Regex    bool   `yaml:"regex,omitempty"`
	Category string `yaml:"category"`
	Payee    string `yaml:"payee,omitempty"`
}

// Result is the outcome of categorizing one description.
type Result struct {
	Category string
	Payee    string
	Matched  bool
}

type compiledRule struct {
	Rule
	re    *regexp.Regexp
	lower string
}

// Categorizer applies rules in order; the first match wins.
type Categorizer struct {
	rules []compiledRule
}

// New compiles rules. Substring rules match case-insensitively.
func New(rules []Rule) (*Categorizer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		cr, err := compile(r)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		compiled = append(compiled, cr)
	}
	return &Categorizer{rules: compiled}, nil
}

// Validate reports every invalid rule at once.
func Validate(rules []Rule) error {
	var errs []error
	for i, r := range rules {
		if _, err := compile(r); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

func compile(r Rule) (compiledRule, error) {
	if r.Match == "" {
		return compiledRule{}, errors.New("empty match")
	}
	if r.Category == "" && r.Payee == "" {
		return compiledRule{}, fmt.Errorf("%q needs a category or payee", r.Match)
	}
	cr := compiledRule{Rule: r, lower: strings.ToLower(r.Match)}
	if r.Regex {
		re, err := regexp.Compile("(?i)" + r.Match)
		if err != nil {
			return compiledRule{}, err
		}
		cr.re = re
	}
	return cr, nil
}

// Categorize returns the first matching rule's category and payee. The
// payee falls back to description when the rule does not rewrite it.
func (c *Categorizer) Categorize(description string) Result {
	lower := strings.ToLower(description)
	for _, r := range c.rules {
		if !r.matches(description, lower) {
			continue
		}
		payee := r.Payee
		if payee == "" {
			payee = description
		}
		return Result{Category: r.Category, Payee: payee, Matched: true}
	}
	return Result{Payee: description}
}

func (r compiledRule) matches(description, lower string) bool {
	if r.re != nil {
		return r.re.MatchString(description)
	}
	return strings.Contains(lower, r.lower)
}
