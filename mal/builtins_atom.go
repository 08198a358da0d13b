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

func registerAtomBuiltins(env *Env) {
	def := func(name string, fn func(args []Value) Value) {
		env.Set(name, BuiltinOf(&Builtin{Name: name, Fn: fn}))
	}

	def("atom", func(args []Value) Value {
		arity("atom", args, 1)
		track("atom")
		return AtomOf(&Atom{Value: args[0]})
	})

	def("atom?", func(args []Value) Value {
		arity("atom?", args, 1)
		return Bool(args[0].Kind == KindAtom)
	})

	def("deref", func(args []Value) Value {
		arity("deref", args, 1)
		if args[0].Kind != KindAtom {
			throwHost("deref: expected an atom")
		}
		return args[0].At.Value
	})

	def("reset!", func(args []Value) Value {
		arity("reset!", args, 2)
		if args[0].Kind != KindAtom {
			throwHost("reset!: expected an atom")
		}
		args[0].At.Value = args[1]
		return args[1]
	})

	def("swap!", func(args []Value) Value {
		minArity("swap!", args, 2)
		if args[0].Kind != KindAtom {
			throwHost("swap!: expected an atom")
		}
		fn := args[1]
		callArgs := append([]Value{args[0].At.Value}, args[2:]...)
		result := Apply(fn, callArgs)
		if result.IsException() {
			return result
		}
		args[0].At.Value = result
		return result
	})
}
