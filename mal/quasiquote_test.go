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

import "testing"

func qq(t *testing.T, src string) string {
	t.Helper()
	form, ok := ReadStr(src)
	if !ok {
		t.Fatalf("ReadStr(%q): no form", src)
	}
	return PrStr(quasiquote(form), true)
}

func TestQuasiquoteEmptyList(t *testing.T) {
	if got := qq(t, "()"); got != "()" {
		t.Fatalf("quasiquote of () = %s, want ()", got)
	}
}

func TestQuasiquoteEmptyVector(t *testing.T) {
	if got := qq(t, "[]"); got != "(vec ())" {
		t.Fatalf("quasiquote of [] = %s, want (vec ())", got)
	}
}

func TestQuasiquoteSymbolIsQuoted(t *testing.T) {
	if got := qq(t, "x"); got != "(quote x)" {
		t.Fatalf("got %s", got)
	}
}

func TestQuasiquoteSelfEvaluatingLeaf(t *testing.T) {
	if got := qq(t, "5"); got != "5" {
		t.Fatalf("got %s", got)
	}
}

func TestQuasiquoteUnquoteReturnsInner(t *testing.T) {
	if got := qq(t, "(unquote x)"); got != "x" {
		t.Fatalf("got %s, want x", got)
	}
}

func TestQuasiquoteListBuildsConsChain(t *testing.T) {
	if got := qq(t, "(1 2)"); got != "(cons 1 (cons 2 ()))" {
		t.Fatalf("got %s", got)
	}
}

func TestQuasiquoteSpliceUnquote(t *testing.T) {
	if got := qq(t, "(1 (splice-unquote xs) 2)"); got != "(cons 1 (concat xs (cons 2 ())))" {
		t.Fatalf("got %s", got)
	}
}

func TestQuasiquoteNonEmptyVectorWrapsInVec(t *testing.T) {
	if got := qq(t, "[1 2]"); got != "(vec (cons 1 (cons 2 ())))" {
		t.Fatalf("got %s", got)
	}
}

func TestQuasiquoteEvaluatedMatchesDirectEval(t *testing.T) {
	env := NewRootEnv(nil, nil)
	evalSrc(t, env, "(def! xs (list 2 3))")
	a := rep(t, env, "`(1 ~@xs 4)")
	b := "(1 2 3 4)"
	if a != b {
		t.Fatalf("got %s, want %s", a, b)
	}
}
