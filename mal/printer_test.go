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

func TestPrintNumberFormatting(t *testing.T) {
	cases := []struct {
		n    float64
		want string
	}{
		{3, "3"},
		{3.5, "3.5"},
		{-2, "-2"},
		{0, "0"},
	}
	for _, c := range cases {
		if got := PrStr(Number(c.n), true); got != c.want {
			t.Fatalf("PrStr(%v) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestPrintStringReadableVsDisplay(t *testing.T) {
	v := String("a\n\"b\"")
	if got := PrStr(v, true); got != `"a\n\"b\""` {
		t.Fatalf("readable print = %q", got)
	}
	if got := PrStr(v, false); got != "a\n\"b\"" {
		t.Fatalf("display print = %q", got)
	}
}

func TestPrintFunctionAndBuiltin(t *testing.T) {
	fn := FunctionOf(&Function{})
	if got := PrStr(fn, true); got != "#<function>" {
		t.Fatalf("got %q", got)
	}
	macro := FunctionOf(&Function{IsMacro: true})
	if got := PrStr(macro, true); got != "#<function>" {
		t.Fatalf("got %q", got)
	}
	bi := BuiltinOf(&Builtin{Name: "+"})
	if got := PrStr(bi, true); got != "#<builtin>" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintAtomShowsCurrentValue(t *testing.T) {
	a := AtomOf(&Atom{Value: Number(5)})
	if got := PrStr(a, true); got != "(atom 5)" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintEmptySequences(t *testing.T) {
	if got := PrStr(ListOf(nil), true); got != "()" {
		t.Fatalf("got %q", got)
	}
	if got := PrStr(VectorOf(nil), true); got != "[]" {
		t.Fatalf("got %q", got)
	}
}
