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
	"os"
	"strings"
)

// registerIOBuiltins wires printer-facing builtins plus the builtins
// that need to call back into the evaluator (`eval`, `apply`, `map`) —
// rootEnv is the env `eval` runs new forms against, matching MAL's rule
// that `eval` always evaluates in the top-level environment regardless of
// the lexical env it was called from.
func registerIOBuiltins(env *Env, rootEnv *Env) {
	def := func(name string, fn func(args []Value) Value) {
		env.Set(name, BuiltinOf(&Builtin{Name: name, Fn: fn}))
	}

	joinPr := func(args []Value, readable bool, sep string) string {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = PrStr(a, readable)
		}
		return strings.Join(parts, sep)
	}

	def("pr-str", func(args []Value) Value { return String(joinPr(args, true, " ")) })
	def("str", func(args []Value) Value { return String(joinPr(args, false, "")) })
	def("prn", func(args []Value) Value {
		fmt.Println(joinPr(args, true, " "))
		return Nil()
	})
	def("println", func(args []Value) Value {
		fmt.Println(joinPr(args, false, " "))
		return Nil()
	})

	def("read-string", func(args []Value) Value {
		arity("read-string", args, 1)
		if !args[0].IsString() {
			throwHost("read-string: expected a string")
		}
		v, ok := ReadStr(args[0].Str.Text())
		if !ok {
			return Nil()
		}
		return v
	})

	def("slurp", func(args []Value) Value {
		arity("slurp", args, 1)
		if !args[0].IsString() {
			throwHost("slurp: expected a string")
		}
		b, err := os.ReadFile(args[0].Str.Text())
		if err != nil {
			throwHost("slurp: " + err.Error())
		}
		return String(string(b))
	})

	def("eval", func(args []Value) Value {
		arity("eval", args, 1)
		return Eval(args[0], rootEnv)
	})

	def("apply", func(args []Value) Value {
		minArity("apply", args, 2)
		fn := args[0]
		last := args[len(args)-1]
		callArgs := append([]Value{}, args[1:len(args)-1]...)
		callArgs = append(callArgs, asSeqList("apply", last).ToSlice()...)
		return Apply(fn, callArgs)
	})

	def("map", func(args []Value) Value {
		arity("map", args, 2)
		fn := args[0]
		items := asSeqList("map", args[1]).ToSlice()
		out := make([]Value, len(items))
		for i, item := range items {
			r := Apply(fn, []Value{item})
			if r.IsException() {
				return r
			}
			out[i] = r
		}
		return ListOf(FromSlice(out))
	})
}
