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
	"math"
)

// Kind is the tag half of a Value. Value is a tagged union: Kind says which
// field of the payload is meaningful, mirroring the tag+payload split of
// Scmer in the teacher's runtime, but kept as plain Go fields instead of
// unsafe pointer packing since nothing here needs the 16-byte struct budget
// that justified that trick there.
type Kind uint8

const (
	KindNil Kind = iota
	KindTrue
	KindFalse
	KindNumber
	KindSymbol
	KindKeyword
	KindString
	KindList
	KindVector
	KindHashmap
	KindFunction
	KindBuiltin
	KindAtom
	KindException
)

// Value is the runtime representation of every MAL datum. Exactly one of
// the payload fields is meaningful for a given Kind:
//
//	KindNumber                -> Num
//	KindSymbol/Keyword/String -> Str
//	KindList/KindVector       -> List (nil means the empty list/vector)
//	KindHashmap               -> Map
//	KindFunction              -> Fn
//	KindBuiltin               -> Bi
//	KindAtom                  -> At
//	KindException             -> Exc
type Value struct {
	Kind Kind
	Num  float64
	Str  *Str
	List *List
	Map  *Hashmap
	Fn   *Function
	Bi   *Builtin
	At   *Atom
	Exc  *Exception
}

func Nil() Value   { return Value{Kind: KindNil} }
func True() Value  { return Value{Kind: KindTrue} }
func False() Value { return Value{Kind: KindFalse} }

func Bool(b bool) Value {
	if b {
		return True()
	}
	return False()
}

func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

func Symbol(name string) Value { return Value{Kind: KindSymbol, Str: NewStr(name)} }

func Keyword(name string) Value { return Value{Kind: KindKeyword, Str: NewStr(":" + name)} }

func String(s string) Value { return Value{Kind: KindString, Str: NewStr(s)} }

func ListOf(l *List) Value { return Value{Kind: KindList, List: l} }

func VectorOf(l *List) Value { return Value{Kind: KindVector, List: l} }

func HashmapOf(h *Hashmap) Value { return Value{Kind: KindHashmap, Map: h} }

func FunctionOf(f *Function) Value { return Value{Kind: KindFunction, Fn: f} }

func BuiltinOf(b *Builtin) Value { return Value{Kind: KindBuiltin, Bi: b} }

func AtomOf(a *Atom) Value { return Value{Kind: KindAtom, At: a} }

func ExceptionOf(e *Exception) Value { return Value{Kind: KindException, Exc: e} }

// IsNil reports whether v is the Nil singleton.
func (v Value) IsNil() bool { return v.Kind == KindNil }

// IsTruthy implements MAL's truthiness rule: everything except nil and
// false is truthy.
func (v Value) IsTruthy() bool { return v.Kind != KindNil && v.Kind != KindFalse }

func (v Value) IsList() bool      { return v.Kind == KindList }
func (v Value) IsVector() bool    { return v.Kind == KindVector }
func (v Value) IsSequential() bool { return v.Kind == KindList || v.Kind == KindVector }
func (v Value) IsSymbol() bool    { return v.Kind == KindSymbol }
func (v Value) IsKeyword() bool   { return v.Kind == KindKeyword }
func (v Value) IsString() bool    { return v.Kind == KindString }
func (v Value) IsHashmap() bool   { return v.Kind == KindHashmap }
func (v Value) IsNumber() bool    { return v.Kind == KindNumber }
func (v Value) IsException() bool { return v.Kind == KindException }
func (v Value) IsCallable() bool  { return v.Kind == KindFunction || v.Kind == KindBuiltin }

// IsEmpty reports whether v is an empty List/Vector. A nil v.List with
// KindList/KindVector represents the empty sequence per spec.
func (v Value) IsEmpty() bool {
	return v.IsSequential() && (v.List == nil || v.List.Len() == 0)
}

// SymbolName returns the bare symbol text. It does not check the kind: a
// keyword or string yields its text, and a kind without a Str panics;
// callers in the evaluator only call this after checking IsSymbol.
func (v Value) SymbolName() string {
	return v.Str.Text()
}

// SymbolIs reports whether v is the symbol named name — used pervasively
// by special-form dispatch in eval.go.
func (v Value) SymbolIs(name string) bool {
	return v.Kind == KindSymbol && v.Str.Text() == name
}

// IsValidHashmapKey reports whether v may be used as a hashmap/bind-list
// key: only Symbol, Keyword and String carry the cached hash a Hashmap
// needs (spec.md §3 invariant).
func (v Value) IsValidHashmapKey() bool {
	switch v.Kind {
	case KindSymbol, KindKeyword, KindString:
		return true
	default:
		return false
	}
}

// AsFloat coerces a Number Value to float64; it panics for any other kind,
// matching the host-error-on-type-mismatch contract builtins rely on.
func (v Value) AsFloat() float64 {
	if v.Kind != KindNumber {
		panic(hostError{"expected a number"})
	}
	return v.Num
}

// Equal implements spec.md §3's equality law: tags must match (List ≡
// Vector for this purpose), payloads compare structurally; numbers by
// value, strings by length+hash+bytes, lists recursively, functions /
// builtins / atoms by identity.
func Equal(a, b Value) bool {
	aSeq, bSeq := a.IsSequential(), b.IsSequential()
	if aSeq != bSeq {
		return false
	}
	if aSeq {
		return listEqual(a.List, b.List)
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil, KindTrue, KindFalse:
		return true
	case KindNumber:
		return a.Num == b.Num
	case KindSymbol, KindKeyword, KindString:
		return a.Str.Equal(b.Str)
	case KindHashmap:
		return hashmapEqual(a.Map, b.Map)
	case KindFunction:
		return a.Fn == b.Fn
	case KindBuiltin:
		return a.Bi == b.Bi
	case KindAtom:
		return a.At == b.At
	case KindException:
		return a.Exc == b.Exc
	}
	return false
}

func listEqual(a, b *List) bool {
	for {
		aEmpty, bEmpty := a == nil, b == nil
		if aEmpty != bEmpty {
			return false
		}
		if aEmpty {
			return true
		}
		if !Equal(a.Value, b.Value) {
			return false
		}
		a, b = a.Next, b.Next
	}
}

func hashmapEqual(a, b *Hashmap) bool {
	if a.Size() != b.Size() {
		return false
	}
	eq := true
	a.Each(func(k, v Value) bool {
		bv, ok := b.Get(k)
		if !ok || !Equal(v, bv) {
			eq = false
			return false
		}
		return true
	})
	return eq
}

// formatNumber renders a float64 the way the reader/printer agree on:
// integer-valued doubles print without a fractional part, otherwise the
// shortest round-tripping decimal form.
func formatNumber(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e15 {
		return trimFloat(f)
	}
	return trimFloatG(f)
}
