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

// quasiquote rewrites ast into the form that, when evaluated, reconstructs
// it with unquote/splice-unquote substitutions applied — the same
// structural rewrite as impls/c.3/step9_try.c's mal_quasiquote, including
// its two special-cased empty-sequence leaves: an empty list quasiquotes
// to itself, an empty vector quasiquotes to `(vec ())` rather than the
// general non-empty-vector wrap.
func quasiquote(ast Value) Value {
	return deeper(func() Value { return quasiquoteStep(ast) })
}

func quasiquoteStep(ast Value) Value {
	switch {
	case ast.IsVector():
		if ast.IsEmpty() {
			return wrapSymbol("vec", ListOf(nil))
		}
		return wrapSymbol("vec", quasiquoteList(ast.List))
	case ast.IsList():
		if ast.IsEmpty() {
			return ast
		}
		if ast.List.Value.SymbolIs("unquote") {
			v, _ := ast.List.Next.At(0)
			return v
		}
		return quasiquoteList(ast.List)
	case ast.IsSymbol(), ast.IsHashmap():
		return wrapSymbol("quote", ast)
	default:
		return ast
	}
}

// quasiquoteList walks l from the tail backward, building up
// (cons elt-rewrite acc) or (concat spliced acc) at each step, exactly
// the right-to-left fold the original's mal_quasiquote performs.
func quasiquoteList(l *List) Value {
	items := l.ToSlice()
	acc := ListOf(nil)
	for i := len(items) - 1; i >= 0; i-- {
		elt := items[i]
		if elt.IsList() && !elt.IsEmpty() && elt.List.Value.SymbolIs("splice-unquote") {
			spliced, _ := elt.List.Next.At(0)
			acc = ListOf(FromSlice([]Value{Symbol("concat"), spliced, acc}))
			continue
		}
		acc = ListOf(FromSlice([]Value{Symbol("cons"), quasiquoteStep(elt), acc}))
	}
	return acc
}
