// File: complete.go
// Title: Command Line Completion
// Description: Completion of the word under the cursor at the end of a
//              partial input line: command names for the first word,
//              registered argument candidates for later words.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package registry

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/msto63/devconsole/foundation/console/parser"
	"github.com/msto63/devconsole/foundation/utils/stringx"
)

// Completion lists the candidates for the word starting at From
type Completion struct {
	From       int
	Word       string
	Candidates []string
}

// Empty reports whether there is nothing to offer
func (c Completion) Empty() bool {
	return len(c.Candidates) == 0
}

// Common returns the longest prefix shared by all candidates
func (c Completion) Common() string {
	return stringx.CommonPrefix(c.Candidates...)
}

// Apply replaces the word under completion in input with candidate
func (c Completion) Apply(input, candidate string) string {
	if c.From > len(input) {
		return input
	}
	return input[:c.From] + candidate
}

// Complete returns completion candidates for the last word of input. A
// line ending in a blank completes a new, empty word.
func (r *Registry) Complete(input string) Completion {
	start := len(input) - len(strings.TrimLeft(input, " \t"))
	rest := input[start:]

	nameEnd := strings.IndexAny(rest, " \t")
	if nameEnd < 0 {
		return Completion{
			From:       start,
			Word:       rest,
			Candidates: r.completeName(rest),
		}
	}

	name := rest[:nameEnd]
	argsAt := start + nameEnd
	args, err := parser.ParseValueList(input[argsAt:])
	if err != nil {
		// unterminated quotes and similar cannot be completed
		return Completion{From: len(input)}
	}

	pos := len(args)
	from := len(input)
	word := ""
	if !strings.HasSuffix(input, " ") && !strings.HasSuffix(input, "\t") && len(args) > 0 {
		last := args[len(args)-1]
		pos--
		from = argsAt + last.Raw.Start
		word = input[from:]
	}

	var out []string
	for _, cand := range r.argSuggestions(name, pos) {
		if strings.HasPrefix(cand, word) {
			out = append(out, cand)
		}
	}
	return Completion{From: from, Word: word, Candidates: r.limit(out)}
}

// completeName offers names starting with word, falling back to fuzzy
// matches when none does
func (r *Registry) completeName(word string) []string {
	names := r.Names()

	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, word) {
			out = append(out, n)
		}
	}
	if len(out) > 0 || word == "" {
		return r.limit(out)
	}

	ranks := fuzzy.RankFindFold(word, names)
	sort.Sort(ranks)
	for _, rank := range ranks {
		out = append(out, rank.Target)
	}
	return r.limit(out)
}

func (r *Registry) limit(list []string) []string {
	if len(list) > r.options.NumSuggestions {
		return list[:r.options.NumSuggestions]
	}
	return list
}
