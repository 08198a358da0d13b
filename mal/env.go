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

// Env is one frame of the environment chain (spec.md §3/§4.4): a table of
// symbol -> Value bindings plus a pointer to the enclosing frame. Lookup
// walks Outer until it finds the symbol or runs out of frames. Frames are
// plain Go maps, not the teacher's old Vars map[string]Scmer with a
// Nodefine flag — gomal never needs the "temporarily shadow but don't
// redefine" trick the teacher's declare-time bookkeeping used, since MAL
// macros are expanded before evaluation rather than declared ahead of
// time.
type Env struct {
	vars  map[string]Value
	outer *Env
}

// NewEnv creates a root (outer-less) environment.
func NewEnv() *Env {
	track("env")
	return &Env{vars: make(map[string]Value)}
}

// NewChildEnv creates a frame nested inside outer, as `let*`/function
// application/`try*`'s catch clause all do.
func NewChildEnv(outer *Env) *Env {
	track("env")
	return &Env{vars: make(map[string]Value), outer: outer}
}

// Set binds name to v in this frame only (`def!`'s semantics).
func (e *Env) Set(name string, v Value) {
	e.vars[name] = v
}

// Find returns the innermost frame that binds name, or nil if none does.
func (e *Env) Find(name string) *Env {
	for cur := e; cur != nil; cur = cur.outer {
		if _, ok := cur.vars[name]; ok {
			return cur
		}
	}
	return nil
}

// Get resolves name by walking the chain outward, reporting whether it was
// bound anywhere.
func (e *Env) Get(name string) (Value, bool) {
	for cur := e; cur != nil; cur = cur.outer {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Bind binds a function's parameter list against a call's argument values
// in a fresh child of closureEnv, honoring the `&rest` variadic marker
// (spec.md §3: "the symbol immediately after `&` binds to a list of all
// remaining arguments"). It reports an arity mismatch via the returned
// string (non-empty on failure) rather than panicking; the callers in
// eval.go raise that message as a host error.
func Bind(closureEnv *Env, params []Value, variadic bool, args []Value) (*Env, string) {
	child := NewChildEnv(closureEnv)
	fixed := params
	var restName string
	if variadic {
		for i, p := range params {
			if p.SymbolIs("&") {
				fixed = params[:i]
				if i+1 < len(params) {
					restName = params[i+1].SymbolName()
				}
				break
			}
		}
	}
	if len(args) < len(fixed) {
		return nil, "not enough arguments"
	}
	if !variadic && len(args) > len(fixed) {
		return nil, "too many arguments"
	}
	for i, p := range fixed {
		child.Set(p.SymbolName(), args[i])
	}
	if variadic && restName != "" {
		child.Set(restName, ListOf(FromSlice(args[len(fixed):])))
	}
	return child, ""
}
