package highlight

import (
	"regexp"
	"strings"
)

var keywords = []string{
	// JavaScript / TypeScript
	"import", "from", "export", "default", "const", "let", "var", "function",
	"return", "if", "else", "for", "while", "do", "switch", "case", "break",
	"continue", "class", "extends", "interface", "type", "namespace", "module",
	"declare", "async", "await", "try", "catch", "finally", "throw", "new",
	"this", "super", "static", "public", "private", "protected", "readonly",
	"abstract", "override", "in", "of", "typeof", "instanceof",
	// Go and Python words that are not also common JS member names
	"package", "func", "defer", "chan", "struct", "range",
	"def", "lambda", "yield", "elif",
}

var types = []string{
	"string", "number", "boolean", "any", "void", "null", "undefined", "never",
	"unknown", "object", "Array", "Promise", "Date", "Error", "Record",
	"Partial", "Required", "Readonly", "Pick", "Omit", "ReturnType",
	"int", "int64", "float64", "bool", "byte", "rune", "error",
}

var functions = []string{
	`React\.FC`, "useState", "useEffect", "useCallback", "useMemo", "useRef",
	"useReducer", "useContext", "useQuery", "useMutation", "queryClient",
	`console\.log`, `JSON\.parse`, `JSON\.stringify`, "fetch", "localStorage",
	"sessionStorage", "make", "append", "len", "print",
}

func wordList(words []string) string {
	return `\b(?:` + strings.Join(words, "|") + `)\b`
}

// defaultRules is compiled once; earlier entries win overlaps.
var defaultRules = []Rule{
	{Pattern: regexp.MustCompile(`//.*`), Category: Comment},
	{Pattern: regexp.MustCompile(`/\*[\s\S]*?\*/`), Category: Comment},
	{Pattern: regexp.MustCompile("[\"'`](?:[^\"'`\\\\]|\\\\.)*[\"'`]"), Category: String},
	{Pattern: regexp.MustCompile(wordList(keywords)), Category: Keyword},
	{Pattern: regexp.MustCompile(wordList(types)), Category: Type},
	{Pattern: regexp.MustCompile(wordList(functions)), Category: Function},
	{Pattern: regexp.MustCompile(`\b\d+(?:\.\d+)?\b`), Category: Number},
	{Pattern: regexp.MustCompile(`[=+\-*/%&|^~!<>?:]+`), Category: Operator},
	{Pattern: regexp.MustCompile(`\b[A-Z_][A-Z0-9_]+\b`), Category: Type},
}

// DefaultRules returns a copy of the built-in rule list.
func DefaultRules() []Rule {
	dup := make([]Rule, len(defaultRules))
	copy(dup, defaultRules)
	return dup
}

// WithExtra returns a Tokenizer over the default rules followed by extra.
func WithExtra(extra []Rule) *Tokenizer {
	return New(append(DefaultRules(), extra...))
}
