package signature

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// Matches reports whether all of text derives from production in g.
// Unlike Parse it follows the grammar literally, so it serves as a
// reference for the hand-written parser.
func Matches(g ebnf.Grammar, production, text string) bool {
	m := &matcher{
		grammar:  g,
		input:    text,
		memo:     make(map[matchKey][]int),
		visiting: make(map[matchKey]bool),
	}
	for _, end := range m.matchName(production, 0) {
		if end == len(text) {
			return true
		}
	}
	return false
}

var (
	loadOnce sync.Once
	loaded   ebnf.Grammar
	loadErr  error
)

// Conforms reports whether text is a sentence of the embedded Grammar's
// production for kind.
func Conforms(kind Kind, text string) (bool, error) {
	loadOnce.Do(func() { loaded, loadErr = LoadGrammar() })
	if loadErr != nil {
		return false, loadErr
	}
	return Matches(loaded, productionFor(kind), text), nil
}

func productionFor(kind Kind) string {
	switch kind {
	case KindClass:
		return prodClassSignature
	case KindMethod:
		return prodMethodSignature
	}
	return prodFieldSignature
}

type matchKey struct {
	name   string
	offset int
}

// matcher computes, for an expression and a start offset, every offset at
// which a derivation of the expression can end.
type matcher struct {
	grammar  ebnf.Grammar
	input    string
	memo     map[matchKey][]int
	visiting map[matchKey]bool
}

func (m *matcher) match(expr ebnf.Expression, offset int) []int {
	switch e := expr.(type) {
	case nil:
		return []int{offset}

	case *ebnf.Token:
		if strings.HasPrefix(m.input[offset:], e.String) {
			return []int{offset + len(e.String)}
		}
		return nil

	case *ebnf.Range:
		r, size := utf8.DecodeRuneInString(m.input[offset:])
		if size == 0 {
			return nil
		}
		begin, _ := utf8.DecodeRuneInString(e.Begin.String)
		end, _ := utf8.DecodeRuneInString(e.End.String)
		if r >= begin && r <= end {
			return []int{offset + size}
		}
		return nil

	case ebnf.Sequence:
		ends := []int{offset}
		for _, item := range e {
			var next []int
			for _, pos := range ends {
				next = union(next, m.match(item, pos))
			}
			if len(next) == 0 {
				return nil
			}
			ends = next
		}
		return ends

	case ebnf.Alternative:
		var ends []int
		for _, alt := range e {
			ends = union(ends, m.match(alt, offset))
		}
		return ends

	case *ebnf.Option:
		return union([]int{offset}, m.match(e.Body, offset))

	case *ebnf.Repetition:
		ends := []int{offset}
		frontier := []int{offset}
		for len(frontier) > 0 {
			var next []int
			for _, pos := range frontier {
				for _, end := range m.match(e.Body, pos) {
					if !contains(ends, end) {
						next = union(next, []int{end})
					}
				}
			}
			ends = union(ends, next)
			frontier = next
		}
		return ends

	case *ebnf.Group:
		return m.match(e.Body, offset)

	case *ebnf.Name:
		return m.matchName(e.String, offset)
	}
	return nil
}

// matchName memoizes per production and offset. A production re-entered at
// the same offset does not match, which cuts left recursion.
func (m *matcher) matchName(name string, offset int) []int {
	key := matchKey{name: name, offset: offset}
	if ends, ok := m.memo[key]; ok {
		return ends
	}
	if m.visiting[key] {
		return nil
	}

	prod, ok := m.grammar[name]
	if !ok {
		return nil
	}

	m.visiting[key] = true
	ends := m.match(prod.Expr, offset)
	delete(m.visiting, key)

	m.memo[key] = ends
	return ends
}

// union merges two sorted offset sets.
func union(a, b []int) []int {
	if len(b) == 0 {
		return a
	}
	out := append(append(make([]int, 0, len(a)+len(b)), a...), b...)
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}

func contains(set []int, v int) bool {
	i := sort.SearchInts(set, v)
	return i < len(set) && set[i] == v
}
