// Package highlight provides a cosmetic, regex-based tokenizer for code
// snippets.
//
// # Overview
//
// A Tokenizer holds an ordered list of Rules. Each rule is scanned across the
// whole line; a match is kept only when it does not intersect a range already
// claimed by an earlier rule. The kept matches are sorted by offset and the
// gaps between them become Plain tokens, so the token texts always
// concatenate back to the input.
//
// Rules are not language-aware. The default list mixes JavaScript,
// TypeScript, Go and Python words and resolves ambiguity purely by order:
//
//  1. line comments, block comments
//  2. quoted strings
//  3. keywords, types, well-known functions
//  4. numbers, operators
//  5. ALL_CAPS constants (styled as types)
//
// Rules are compiled once at package init (or once from configuration via
// Compile) and never rebuilt per call.
package highlight
