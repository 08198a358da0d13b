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

func TestEqualReflexiveSymmetricTransitive(t *testing.T) {
	a := ListOf(FromSlice([]Value{Number(1), String("x"), Keyword("k")}))
	b := ListOf(FromSlice([]Value{Number(1), String("x"), Keyword("k")}))
	c := VectorOf(a.List)

	if !Equal(a, a) {
		t.Fatalf("Equal not reflexive")
	}
	if Equal(a, b) != Equal(b, a) {
		t.Fatalf("Equal not symmetric")
	}
	if !Equal(a, b) || !Equal(b, c) || !Equal(a, c) {
		t.Fatalf("Equal not transitive across List/Vector")
	}
}

func TestEqualListVectorBlind(t *testing.T) {
	l := ListOf(FromSlice([]Value{Number(1), Number(2)}))
	v := VectorOf(FromSlice([]Value{Number(1), Number(2)}))
	if !Equal(l, v) {
		t.Fatalf("List and Vector with equal elements should compare equal")
	}
}

func TestEqualFunctionsByIdentity(t *testing.T) {
	f1 := FunctionOf(&Function{})
	f2 := FunctionOf(&Function{})
	if Equal(f1, f2) {
		t.Fatalf("distinct functions should not compare equal")
	}
	if !Equal(f1, f1) {
		t.Fatalf("a function should equal itself")
	}
}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nil(), false},
		{False(), false},
		{True(), true},
		{Number(0), true},
		{String(""), true},
	}
	for _, c := range cases {
		if got := c.v.IsTruthy(); got != c.want {
			t.Fatalf("IsTruthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestIsValidHashmapKey(t *testing.T) {
	valid := []Value{Symbol("a"), Keyword("a"), String("a")}
	for _, v := range valid {
		if !v.IsValidHashmapKey() {
			t.Fatalf("%v should be a valid hashmap key", v)
		}
	}
	invalid := []Value{Number(1), Nil(), True(), ListOf(nil)}
	for _, v := range invalid {
		if v.IsValidHashmapKey() {
			t.Fatalf("%v should not be a valid hashmap key", v)
		}
	}
}

func TestEmptyListVsEmptyVector(t *testing.T) {
	l := ListOf(nil)
	v := VectorOf(nil)
	if !l.IsEmpty() || !v.IsEmpty() {
		t.Fatalf("nil-backed List/Vector should be empty")
	}
	if !l.IsList() || !v.IsVector() {
		t.Fatalf("kind tags should be preserved for empty sequences")
	}
}
