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

import "github.com/google/uuid"

// registerGensymBuiltin wires a supplemental `gensym` builtin, absent from
// spec.md's fixed table but needed by any user-authored macro that must
// avoid capturing a caller's variable names (the shipped `cond` macro
// doesn't need it, but gomal's users writing their own macros will). Each
// call mints a symbol suffixed with a fresh UUID, so two expansions of the
// same macro never collide even across separate processes.
func registerGensymBuiltin(env *Env) {
	env.Set("gensym", BuiltinOf(&Builtin{Name: "gensym", Fn: func(args []Value) Value {
		prefix := "G__"
		if len(args) == 1 {
			if !args[0].IsString() && !args[0].IsSymbol() {
				throwHost("gensym: expected a string or symbol prefix")
			}
			prefix = args[0].Str.Text()
		} else if len(args) > 1 {
			throwHost("gensym: wrong number of arguments")
		}
		return Symbol(prefix + uuid.NewString())
	}}))
}
