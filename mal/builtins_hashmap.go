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

// badKey raises the catchable language-level exception map operations use
// for a non-string-kind key — programs can try*/catch* it, unlike a host
// error.
func badKey(k Value) (Value, bool) {
	if k.IsValidHashmapKey() {
		return Value{}, false
	}
	return throwValue(String("hashmap key must be a symbol, keyword or string")), true
}

// registerHashmapBuiltins wires hash-map construction and the copy-on-
// write update builtins. `assoc`/`dissoc` are thin wrappers over
// Hashmap.With/Without (hashmap.go), per SPEC_FULL.md's supplemented-
// feature note on assoc's exact semantics recovered from
// original_source/impls/c.3/core.c.
func registerHashmapBuiltins(env *Env) {
	def := func(name string, fn func(args []Value) Value) {
		env.Set(name, BuiltinOf(&Builtin{Name: name, Fn: fn}))
	}

	def("hash-map", func(args []Value) Value {
		if len(args)%2 != 0 {
			throwHost("hash-map: odd number of arguments")
		}
		h := NewHashmap()
		for i := 0; i+1 < len(args); i += 2 {
			if exc, ok := badKey(args[i]); ok {
				return exc
			}
			h.Set(args[i], args[i+1])
		}
		return HashmapOf(h)
	})

	def("assoc", func(args []Value) Value {
		minArity("assoc", args, 1)
		if !args[0].IsHashmap() {
			throwHost("assoc: expected a hash-map")
		}
		if (len(args)-1)%2 != 0 {
			throwHost("assoc: odd number of key/value arguments")
		}
		for i := 1; i < len(args); i += 2 {
			if exc, ok := badKey(args[i]); ok {
				return exc
			}
		}
		return HashmapOf(args[0].Map.With(args[1:]))
	})

	def("dissoc", func(args []Value) Value {
		minArity("dissoc", args, 1)
		if !args[0].IsHashmap() {
			throwHost("dissoc: expected a hash-map")
		}
		for _, k := range args[1:] {
			if exc, ok := badKey(k); ok {
				return exc
			}
		}
		return HashmapOf(args[0].Map.Without(args[1:]))
	})

	def("get", func(args []Value) Value {
		arity("get", args, 2)
		if exc, ok := badKey(args[1]); ok {
			return exc
		}
		if args[0].IsNil() {
			return Nil()
		}
		if !args[0].IsHashmap() {
			throwHost("get: expected a hash-map or nil")
		}
		v, ok := args[0].Map.Get(args[1])
		if !ok {
			return Nil()
		}
		return v
	})

	def("contains?", func(args []Value) Value {
		arity("contains?", args, 2)
		if exc, ok := badKey(args[1]); ok {
			return exc
		}
		if !args[0].IsHashmap() {
			throwHost("contains?: expected a hash-map")
		}
		return Bool(args[0].Map.Has(args[1]))
	})

	def("keys", func(args []Value) Value {
		arity("keys", args, 1)
		if !args[0].IsHashmap() {
			throwHost("keys: expected a hash-map")
		}
		return ListOf(FromSlice(args[0].Map.Keys()))
	})

	def("vals", func(args []Value) Value {
		arity("vals", args, 1)
		if !args[0].IsHashmap() {
			throwHost("vals: expected a hash-map")
		}
		return ListOf(FromSlice(args[0].Map.Vals()))
	})
}
