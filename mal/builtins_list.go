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

import "fmt"

func asSeqList(name string, v Value) *List {
	if !v.IsSequential() {
		throwHost(name + ": expected a list or vector")
	}
	return v.List
}

func registerListBuiltins(env *Env) {
	def := func(name string, fn func(args []Value) Value) {
		env.Set(name, BuiltinOf(&Builtin{Name: name, Fn: fn}))
	}

	def("list", func(args []Value) Value { return ListOf(FromSlice(args)) })
	def("vector", func(args []Value) Value { return VectorOf(FromSlice(args)) })

	def("count", func(args []Value) Value {
		arity("count", args, 1)
		if args[0].IsNil() {
			return Number(0)
		}
		return Number(float64(asSeqList("count", args[0]).Len()))
	})

	def("empty?", func(args []Value) Value {
		arity("empty?", args, 1)
		return Bool(asSeqList("empty?", args[0]) == nil)
	})

	def("cons", func(args []Value) Value {
		arity("cons", args, 2)
		return ListOf(Prepend(args[0], asSeqList("cons", args[1])))
	})

	def("concat", func(args []Value) Value {
		lists := make([]*List, len(args))
		for i, a := range args {
			lists[i] = asSeqList("concat", a)
		}
		return ListOf(Concat(lists...))
	})

	def("vec", func(args []Value) Value {
		arity("vec", args, 1)
		return VectorOf(asSeqList("vec", args[0]))
	})

	def("first", func(args []Value) Value {
		arity("first", args, 1)
		if args[0].IsNil() {
			return Nil()
		}
		l := asSeqList("first", args[0])
		if l == nil {
			return Nil()
		}
		return l.Value
	})

	def("rest", func(args []Value) Value {
		arity("rest", args, 1)
		if args[0].IsNil() {
			return ListOf(nil)
		}
		l := asSeqList("rest", args[0])
		if l == nil {
			return ListOf(nil)
		}
		return ListOf(l.Next)
	})

	def("nth", func(args []Value) Value {
		arity("nth", args, 2)
		l := asSeqList("nth", args[0])
		idx := int(args[1].AsFloat())
		v, ok := l.At(idx)
		if !ok {
			return throwValue(String(fmt.Sprintf("index %d out of bounds for size %d", idx, l.Len())))
		}
		return v
	})
}
