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

// arity raises a host error when args doesn't have exactly n elements —
// every fixed-arity builtin below starts with this, matching the
// teacher's own declare-time arity checks (scm/declare.go's Declaration).
func arity(name string, args []Value, n int) {
	if len(args) != n {
		throwHost(name + ": wrong number of arguments")
	}
}

func minArity(name string, args []Value, n int) {
	if len(args) < n {
		throwHost(name + ": wrong number of arguments")
	}
}

// numArgs coerces every argument to a float64. A non-number operand makes
// the second return value a catchable language-level exception — spec.md
// §4.6 puts arithmetic type mismatches on the exception channel, unlike
// the host-error type checks other builtins use.
func numArgs(name string, args []Value) ([]float64, Value) {
	out := make([]float64, len(args))
	for i, a := range args {
		if !a.IsNumber() {
			return nil, throwValue(String(name + ": expected a number"))
		}
		out[i] = a.Num
	}
	return out, Value{}
}

func registerCoreBuiltins(env *Env) {
	def := func(name string, fn func(args []Value) Value) {
		env.Set(name, BuiltinOf(&Builtin{Name: name, Fn: fn}))
	}

	def("+", func(args []Value) Value {
		ns, exc := numArgs("+", args)
		if exc.IsException() {
			return exc
		}
		sum := 0.0
		for _, n := range ns {
			sum += n
		}
		return Number(sum)
	})
	def("*", func(args []Value) Value {
		ns, exc := numArgs("*", args)
		if exc.IsException() {
			return exc
		}
		prod := 1.0
		for _, n := range ns {
			prod *= n
		}
		return Number(prod)
	})
	def("-", func(args []Value) Value {
		minArity("-", args, 1)
		ns, exc := numArgs("-", args)
		if exc.IsException() {
			return exc
		}
		if len(ns) == 1 {
			return Number(-ns[0])
		}
		result := ns[0]
		for _, n := range ns[1:] {
			result -= n
		}
		return Number(result)
	})
	def("/", func(args []Value) Value {
		minArity("/", args, 1)
		ns, exc := numArgs("/", args)
		if exc.IsException() {
			return exc
		}
		if len(ns) == 1 {
			return Number(1 / ns[0])
		}
		result := ns[0]
		for _, n := range ns[1:] {
			result /= n
		}
		return Number(result)
	})

	cmp := func(name string, ok func(a, b float64) bool) {
		def(name, func(args []Value) Value {
			minArity(name, args, 2)
			ns, exc := numArgs(name, args)
			if exc.IsException() {
				return exc
			}
			for i := 0; i+1 < len(ns); i++ {
				if !ok(ns[i], ns[i+1]) {
					return False()
				}
			}
			return True()
		})
	}
	cmp("<", func(a, b float64) bool { return a < b })
	cmp("<=", func(a, b float64) bool { return a <= b })
	cmp(">", func(a, b float64) bool { return a > b })
	cmp(">=", func(a, b float64) bool { return a >= b })

	def("=", func(args []Value) Value {
		arity("=", args, 2)
		return Bool(Equal(args[0], args[1]))
	})

	def("nil?", func(args []Value) Value { arity("nil?", args, 1); return Bool(args[0].IsNil()) })
	def("true?", func(args []Value) Value { arity("true?", args, 1); return Bool(args[0].Kind == KindTrue) })
	def("false?", func(args []Value) Value { arity("false?", args, 1); return Bool(args[0].Kind == KindFalse) })
	def("symbol?", func(args []Value) Value { arity("symbol?", args, 1); return Bool(args[0].IsSymbol()) })
	def("keyword?", func(args []Value) Value { arity("keyword?", args, 1); return Bool(args[0].IsKeyword()) })
	def("vector?", func(args []Value) Value { arity("vector?", args, 1); return Bool(args[0].IsVector()) })
	def("map?", func(args []Value) Value { arity("map?", args, 1); return Bool(args[0].IsHashmap()) })
	def("sequential?", func(args []Value) Value { arity("sequential?", args, 1); return Bool(args[0].IsSequential()) })
	def("list?", func(args []Value) Value { arity("list?", args, 1); return Bool(args[0].IsList()) })

	def("symbol", func(args []Value) Value {
		arity("symbol", args, 1)
		if !args[0].IsString() {
			throwHost("symbol: expected a string")
		}
		return Symbol(args[0].Str.Text())
	})
	def("keyword", func(args []Value) Value {
		arity("keyword", args, 1)
		if args[0].IsKeyword() {
			return args[0]
		}
		if !args[0].IsString() {
			throwHost("keyword: expected a string")
		}
		return Keyword(args[0].Str.Text())
	})

	def("throw", func(args []Value) Value {
		arity("throw", args, 1)
		return throwValue(args[0])
	})
}
