package highlight

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTokenize_Empty(t *testing.T) {
	require.Nil(t, Default().Tokenize(""))
}

func TestTokenize_DefaultRules(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "declaration",
			in:   "const x = 42;",
			want: []Token{
				{"const", Keyword},
				{" x ", Plain},
				{"=", Operator},
				{" ", Plain},
				{"42", Number},
				{";", Plain},
			},
		},
		{
			name: "line comment swallows keywords",
			in:   "// return 1",
			want: []Token{{"// return 1", Comment}},
		},
		{
			name: "keyword inside string stays string",
			in:   `"return"`,
			want: []Token{{`"return"`, String}},
		},
		{
			name: "import line",
			in:   "import React, { useState } from 'react';",
			want: []Token{
				{"import", Keyword},
				{" React, { ", Plain},
				{"useState", Function},
				{" } ", Plain},
				{"from", Keyword},
				{" ", Plain},
				{"'react'", String},
				{";", Plain},
			},
		},
		{
			name: "constant",
			in:   "MAX_SIZE",
			want: []Token{{"MAX_SIZE", Type}},
		},
		{
			name: "adjacent matches have no empty plain",
			in:   "a=1",
			want: []Token{{"a", Plain}, {"=", Operator}, {"1", Number}},
		},
		{
			name: "dotted function",
			in:   "console.log(x)",
			want: []Token{{"console.log", Function}, {"(x)", Plain}},
		},
		{
			name: "block comment",
			in:   "x /* y */ z",
			want: []Token{{"x ", Plain}, {"/* y */", Comment}, {" z", Plain}},
		},
	}

	tok := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, Join(got))
		})
	}
}

func TestTokenize_JSMemberNamesStayPlain(t *testing.T) {
	got := Default().Tokenize("items.map(fn).with(a, b) as and or not")
	for _, tok := range got {
		assert.NotEqual(t, Keyword, tok.Category, "token %q", tok.Text)
	}
	assert.Equal(t, "items.map(fn).with(a, b) as and or not", Join(got))
}

func TestTokenize_EarlierRuleWins(t *testing.T) {
	tok := New([]Rule{
		{Pattern: regexp.MustCompile(`ab`), Category: Keyword},
		{Pattern: regexp.MustCompile(`bc`), Category: String},
	})

	got := tok.Tokenize("abc")
	assert.Equal(t, []Token{{"ab", Keyword}, {"c", Plain}}, got)
}

func TestTokenize_PartialOverlapRejected(t *testing.T) {
	// "bcd" starts inside the claimed "abc" but extends past it.
	tok := New([]Rule{
		{Pattern: regexp.MustCompile(`abc`), Category: Keyword},
		{Pattern: regexp.MustCompile(`cde`), Category: Number},
	})

	got := tok.Tokenize("abcde")
	assert.Equal(t, []Token{{"abc", Keyword}, {"de", Plain}}, got)
}

func TestTokenize_ZeroWidthMatchesIgnored(t *testing.T) {
	tok := New([]Rule{{Pattern: regexp.MustCompile(`x*`), Category: Keyword}})

	got := tok.Tokenize("axb")
	assert.Equal(t, []Token{{"a", Plain}, {"x", Keyword}, {"b", Plain}}, got)
}

func TestCompile(t *testing.T) {
	rules, err := Compile([]RuleSpec{{Pattern: `\bTODO\b`, Category: "Comment"}})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, Comment, rules[0].Category)

	_, err = Compile([]RuleSpec{{Pattern: `(`, Category: "comment"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile pattern")

	_, err = Compile([]RuleSpec{{Pattern: `x`, Category: "sparkle"}})
	require.Error(t, err)

	_, err = Compile([]RuleSpec{{Pattern: "  ", Category: "comment"}})
	require.Error(t, err)
}

func TestWithExtra_AppendsAfterDefaults(t *testing.T) {
	rules, err := Compile([]RuleSpec{{Pattern: `\bconst\b|\bTODO\b`, Category: "function"}})
	require.NoError(t, err)

	got := WithExtra(rules).Tokenize("const TODO")
	// const is claimed by the default keyword rule; TODO by the ALL_CAPS rule.
	assert.Equal(t, []Token{{"const", Keyword}, {" ", Plain}, {"TODO", Type}}, got)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "keyword", Keyword.String())
	assert.Equal(t, "unknown", Category(99).String())

	c, err := ParseCategory(" Operator ")
	require.NoError(t, err)
	assert.Equal(t, Operator, c)
}

func TestTokenize_ReconstructsInput(t *testing.T) {
	tok := Default()
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.OneOf(
			rapid.String(),
			rapid.StringMatching(`[a-zA-Z0-9 _"'/*=+;.,(){}-]{0,60}`),
		).Draw(rt, "text")

		tokens := tok.Tokenize(text)
		if Join(tokens) != text {
			rt.Fatalf("Join(Tokenize(%q)) = %q", text, Join(tokens))
		}
		for i, tk := range tokens {
			if tk.Text == "" {
				rt.Fatalf("token %d is empty", i)
			}
			if i > 0 && tk.Category == Plain && tokens[i-1].Category == Plain {
				rt.Fatalf("adjacent plain tokens at %d", i)
			}
		}
	})
}

func TestTokenize_FirstRuleMatchesAlwaysKept(t *testing.T) {
	first := regexp.MustCompile(`a+`)
	tok := New([]Rule{
		{Pattern: first, Category: Keyword},
		{Pattern: regexp.MustCompile(`[ab]+`), Category: String},
	})

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[abc]{0,40}`).Draw(rt, "text")
		tokens := tok.Tokenize(text)

		kept := map[[2]int]bool{}
		pos := 0
		var prevEnd int
		for _, tk := range tokens {
			start, end := pos, pos+len(tk.Text)
			if start < prevEnd {
				rt.Fatalf("token %q overlaps previous", tk.Text)
			}
			if tk.Category == Keyword {
				kept[[2]int{start, end}] = true
			}
			prevEnd = end
			pos = end
		}
		for _, loc := range first.FindAllStringIndex(text, -1) {
			if !kept[[2]int{loc[0], loc[1]}] {
				rt.Fatalf("first-rule match %v in %q was not kept", loc, text)
			}
		}
	})
}
