package highlight

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Category classifies a token for display styling.
type Category int

const (
	Plain Category = iota
	Comment
	String
	Keyword
	Type
	Function
	Number
	Operator
)

var categoryNames = [...]string{
	Plain:    "plain",
	Comment:  "comment",
	String:   "string",
	Keyword:  "keyword",
	Type:     "type",
	Function: "function",
	Number:   "number",
	Operator: "operator",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory maps a category name (case-insensitive) to its Category.
func ParseCategory(name string) (Category, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == want {
			return Category(i), nil
		}
	}
	return Plain, fmt.Errorf("unknown category %q", name)
}

// Token is a classified substring of a line.
type Token struct {
	Text     string
	Category Category
}

// Rule pairs a compiled pattern with the category it assigns.
type Rule struct {
	Pattern  *regexp.Regexp
	Category Category
}

// RuleSpec is the uncompiled form of a Rule, as read from configuration.
type RuleSpec struct {
	Pattern  string `toml:"pattern"`
	Category string `toml:"category"`
}

// Compile turns specs into rules, preserving order.
func Compile(specs []RuleSpec) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	for i, spec := range specs {
		if strings.TrimSpace(spec.Pattern) == "" {
			return nil, fmt.Errorf("rule %d: pattern is empty", i)
		}
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d: compile pattern: %w", i, err)
		}
		cat, err := ParseCategory(spec.Category)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, Rule{Pattern: re, Category: cat})
	}
	return rules, nil
}

// Tokenizer classifies text with a fixed, ordered rule list. Earlier rules
// claim text first; a later match that touches a claimed range is dropped.
// A Tokenizer is immutable and safe for concurrent use.
type Tokenizer struct {
	rules []Rule
}

// New returns a Tokenizer over a copy of rules.
func New(rules []Rule) *Tokenizer {
	dup := make([]Rule, len(rules))
	copy(dup, rules)
	return &Tokenizer{rules: dup}
}

// Default returns a Tokenizer using DefaultRules.
func Default() *Tokenizer {
	return &Tokenizer{rules: defaultRules}
}

// Rules returns a copy of the tokenizer's rule list.
func (t *Tokenizer) Rules() []Rule {
	dup := make([]Rule, len(t.rules))
	copy(dup, t.rules)
	return dup
}

type span struct {
	start, end int
	cat        Category
}

// Tokenize splits text into tokens that cover it exactly once, in order.
func (t *Tokenizer) Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	var claimed []span
	for _, rule := range t.rules {
		for _, loc := range rule.Pattern.FindAllStringIndex(text, -1) {
			if loc[1] <= loc[0] {
				continue
			}
			if overlaps(claimed, loc[0], loc[1]) {
				continue
			}
			claimed = append(claimed, span{start: loc[0], end: loc[1], cat: rule.Category})
		}
	}
	sort.Slice(claimed, func(i, j int) bool { return claimed[i].start < claimed[j].start })

	tokens := make([]Token, 0, 2*len(claimed)+1)
	pos := 0
	for _, s := range claimed {
		if s.start > pos {
			tokens = append(tokens, Token{Text: text[pos:s.start], Category: Plain})
		}
		tokens = append(tokens, Token{Text: text[s.start:s.end], Category: s.cat})
		pos = s.end
	}
	if pos < len(text) {
		tokens = append(tokens, Token{Text: text[pos:], Category: Plain})
	}
	return tokens
}

func overlaps(claimed []span, start, end int) bool {
	for _, s := range claimed {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// Join concatenates token text.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}
