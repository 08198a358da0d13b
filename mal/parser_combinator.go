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

import packrat "github.com/launix-de/go-packrat/v2"

// scmerParser adapts a single literal-atom packrat grammar to MAL's value
// world, the minimal slice of what the teacher's scm/packrat.go does for
// its much richer nested-grammar `ScmParser`. A gomal `(parser "lit")`
// call only builds a single-atom matcher — enough to let a MAL program
// validate/tokenize against a literal without hand-rolling string
// scanning — rather than reproducing the teacher's full grammar DSL,
// which depends on Scmer-specific AST nodes gomal's Value has no
// equivalent of.
type scmerParser struct {
	root packrat.Parser[string]
}

func (p *scmerParser) Execute(input string) (Value, bool) {
	scanner := packrat.NewScanner[string](input, packrat.SkipWhitespaceAndCommentsRegex)
	node, err := packrat.Parse[string](p.root, scanner)
	if err != nil {
		return Value{}, false
	}
	return String(node.Payload), true
}

// registerParserBuiltin wires the supplemental `parser` builtin: given a
// literal string, returns a callable Value that matches that literal
// (skipping surrounding whitespace/comments) against a single string
// argument, returning the matched text or nil.
func registerParserBuiltin(env *Env) {
	env.Set("parser", BuiltinOf(&Builtin{Name: "parser", Fn: func(args []Value) Value {
		arity("parser", args, 1)
		if !args[0].IsString() {
			throwHost("parser: expected a literal string")
		}
		p := &scmerParser{root: packrat.NewAtomParser[string](args[0].Str.Text(), args[0].Str.Text(), false, true)}
		return BuiltinOf(&Builtin{Name: "parser:" + args[0].Str.Text(), Fn: func(callArgs []Value) Value {
			arity("parser", callArgs, 1)
			if !callArgs[0].IsString() {
				throwHost("parser: expected a string to match against")
			}
			v, ok := p.Execute(callArgs[0].Str.Text())
			if !ok {
				return Nil()
			}
			return v
		}})
	}}))
}
