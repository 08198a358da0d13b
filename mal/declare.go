/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package mal

import (
	"fmt"
	"sort"
	"strings"
)

// declaration is one row of builtin documentation metadata, the MAL
// analogue of the teacher's scm/declare.go Declaration (stripped of
// MinParameter/MaxParameter/Params since builtins here do their own arity
// checking via arity/minArity rather than a central validator).
type declaration struct {
	Name string
	Desc string
}

var declarations = map[string]*declaration{}

// declare registers desc as the one-line help text for the builtin
// named name (it runs from init, before any root env exists). It does not itself install
// anything into an Env — callers call the registerXBuiltins functions for
// that — it only attaches documentation metadata, mirroring the split
// between scm/declare.go's Declare (which both binds and documents) minus
// the binding half, since gomal's registerXBuiltins functions already own
// binding.
func declare(name, desc string) {
	declarations[name] = &declaration{Name: name, Desc: desc}
}

// Help renders documentation for fn, or an index of every documented
// builtin when fn is empty — the same two-mode contract as the teacher's
// scm/declare.go Help.
func Help(fn string) string {
	if fn == "" {
		var b strings.Builder
		b.WriteString("Available functions:\n\n")
		names := make([]string, 0, len(declarations))
		for n := range declarations {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			b.WriteString("  " + n + ": " + declarations[n].Desc + "\n")
		}
		b.WriteString("\nget further information with (help \"functionname\")\n")
		return b.String()
	}
	d, ok := declarations[fn]
	if !ok {
		return fmt.Sprintf("function not found: %s", fn)
	}
	return fmt.Sprintf("Help for: %s\n===\n\n%s\n", d.Name, d.Desc)
}

func init() {
	for name, desc := range map[string]string{
		"+": "sum of all numeric arguments",
		"-": "subtract the rest from the first argument, or negate a single argument",
		"*": "product of all numeric arguments",
		"/": "divide the first argument by the rest, left to right",
		"=": "structural equality (List and Vector compare equal)",
		"<": "strictly increasing numeric comparison",
		"<=": "non-decreasing numeric comparison",
		">": "strictly decreasing numeric comparison",
		">=": "non-increasing numeric comparison",
		"count": "number of elements in a list/vector, 0 for nil",
		"empty?": "true if the argument is an empty list or vector",
		"cons": "(cons x seq) prepends x onto seq, returning a list",
		"concat": "concatenate any number of lists/vectors into one list",
		"nth": "(nth seq i) returns the ith element or throws on out-of-range",
		"first": "first element of a sequence, or nil for nil/empty",
		"rest": "all but the first element, or () for nil/empty",
		"list": "construct a list from the arguments",
		"vector": "construct a vector from the arguments",
		"symbol": "construct a symbol from a string",
		"keyword": "construct a keyword from a string (idempotent on keywords)",
		"hash-map": "construct a hash-map from alternating key/value arguments",
		"list?": "true if the argument is a list",
		"nil?": "true if the argument is nil",
		"true?": "true if the argument is the boolean true",
		"false?": "true if the argument is the boolean false",
		"symbol?": "true if the argument is a symbol",
		"keyword?": "true if the argument is a keyword",
		"vector?": "true if the argument is a vector",
		"map?": "true if the argument is a hash-map",
		"sequential?": "true if the argument is a list or a vector",
		"pr-str": "readable (re-readable) string representation, space-joined",
		"str": "display string representation, concatenated with no separator",
		"prn": "print the readable representation of each argument, then a newline",
		"println": "print the display representation of each argument, then a newline",
		"vec": "coerce a list/vector into a vector",
		"assoc": "(assoc map k v ...) returns a copy of map with the given keys set",
		"dissoc": "(dissoc map k ...) returns a copy of map with the given keys removed",
		"get": "(get map k) returns the value for k, or nil if absent or map is nil",
		"contains?": "true if the hash-map contains the given key",
		"keys": "list of a hash-map's keys",
		"vals": "list of a hash-map's values",
		"read-string": "parse a string into a single MAL form",
		"slurp": "read an entire file into a string",
		"eval": "evaluate a form in the root environment",
		"atom": "construct a mutable reference cell around a value",
		"atom?": "true if the argument is an atom",
		"deref": "read an atom's current value",
		"reset!": "replace an atom's value, returning it",
		"swap!": "(swap! atom f & args) replaces the atom's value with (f @atom & args)",
		"throw": "raise a language-level exception carrying the given value",
		"apply": "(apply f a b ... seq) calls f with a, b, ... followed by seq's elements",
		"map": "(map f seq) applies f to every element, returning a list of results",
		"gensym": "mint a fresh, collision-free symbol (optionally prefixed)",
		"parser": "build a packrat literal matcher callable from a MAL string",
		"help": "print documentation for a builtin, or an index when called with no arguments",
	} {
		declare(name, desc)
	}
}

// registerHelpBuiltin wires the `help` introspection builtin described
// above into env.
func registerHelpBuiltin(env *Env) {
	env.Set("help", BuiltinOf(&Builtin{Name: "help", Fn: func(args []Value) Value {
		name := ""
		if len(args) == 1 {
			if !args[0].IsString() && !args[0].IsSymbol() {
				throwHost("help: expected a string or symbol")
			}
			name = args[0].Str.Text()
		} else if len(args) > 1 {
			throwHost("help: wrong number of arguments")
		}
		fmt.Print(Help(name))
		return Nil()
	}}))
}
