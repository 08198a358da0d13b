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

import "github.com/jtolds/gls"

// MaxDepth bounds the non-tail recursion deeper guards (argument-list
// evaluation, hashmap-literal evaluation, quasiquote expansion). main.go's
// -max-depth flag overwrites this before the first Eval call; 1000 is a
// conservative default for an unconfigured embedding.
var MaxDepth = 1000

var glsMgr = gls.NewContextManager()

const depthKey = "mal-eval-depth"

func currentDepth() int {
	if v, ok := glsMgr.GetValue(depthKey); ok {
		return v.(int)
	}
	return 0
}

// deeper runs fn one recursion level deeper than the caller, raising a
// host error instead of letting a pathological non-tail recursion blow the
// Go call stack. Only the non-tail recursive helpers go through this:
// Eval's tail positions loop by reassignment rather than recursing, and
// its other nested Eval calls (do's leading forms, if's condition, let*
// values, def!, try*'s protected form) are not counted against MaxDepth.
func deeper(fn func() Value) Value {
	d := currentDepth() + 1
	if d > MaxDepth {
		throwHost("max recursion depth exceeded")
	}
	var result Value
	glsMgr.SetValues(gls.Values{depthKey: d}, func() {
		result = fn()
	})
	return result
}

// Eval is the trampolined evaluator (spec.md §4.4/§5): tail positions
// (the body of `do`, `let*`, `if`'s branches, and function application)
// rebind env/ast and loop instead of recursing, giving MAL's mutual/self
// tail recursion unbounded depth on the Go stack.
func Eval(ast Value, env *Env) Value {
	for {
		if !ast.IsList() {
			return evalAst(ast, env)
		}
		if ast.IsEmpty() {
			return ast
		}
		ast = macroexpandFull(ast, env)
		if !ast.IsList() {
			return evalAst(ast, env)
		}
		if ast.IsEmpty() {
			return ast
		}
		head := ast.List.Value
		if head.IsSymbol() {
			switch head.SymbolName() {
			case "def!":
				return evalDef(ast, env)
			case "defmacro!":
				return evalDefMacro(ast, env)
			case "let*":
				env, ast = evalLetTail(ast, env)
				continue
			case "do":
				rest := ast.List.Next
				if rest == nil {
					throwHost("do: missing body")
				}
				for rest.Next != nil {
					v := Eval(rest.Value, env)
					if v.IsException() {
						return v
					}
					rest = rest.Next
				}
				ast = rest.Value
				continue
			case "if":
				next, cont := evalIfTail(ast, env)
				if !cont {
					return next
				}
				ast = next
				continue
			case "fn*":
				return evalFnStar(ast, env)
			case "quote":
				arg, _ := ast.List.Next.At(0)
				return arg
			case "quasiquote":
				arg, _ := ast.List.Next.At(0)
				ast = quasiquote(arg)
				continue
			case "quasiquoteexpand":
				arg, _ := ast.List.Next.At(0)
				return quasiquote(arg)
			case "macroexpand":
				arg, _ := ast.List.Next.At(0)
				return macroexpandFull(arg, env)
			case "try*":
				return evalTryStar(ast, env)
			}
		}
		evaled := evalAst(ast, env)
		if evaled.IsException() {
			return evaled
		}
		items := evaled.List.ToSlice()
		fn, args := items[0], items[1:]
		switch fn.Kind {
		case KindBuiltin:
			return fn.Bi.Fn(args)
		case KindFunction:
			child, errMsg := Bind(fn.Fn.Env, paramSlice(fn.Fn.Params), fn.Fn.IsVariadic, args)
			if errMsg != "" {
				throwHost(errMsg)
			}
			env = child
			ast = fn.Fn.Body
			continue
		default:
			return throwValue(String("can't call non-function value"))
		}
	}
}

func paramSlice(params Value) []Value {
	return params.List.ToSlice()
}

// evalAst evaluates symbols by lookup and recurses (non-tail — guarded by
// deeper) into list/vector/hashmap elements; everything else is
// self-evaluating.
func evalAst(v Value, env *Env) Value {
	switch v.Kind {
	case KindSymbol:
		val, ok := env.Get(v.SymbolName())
		if !ok {
			return throwValue(String("'" + v.SymbolName() + "' not found"))
		}
		return val
	case KindList, KindVector:
		return deeper(func() Value {
			items := v.List.ToSlice()
			out := make([]Value, len(items))
			for i, item := range items {
				r := Eval(item, env)
				if r.IsException() {
					return r
				}
				out[i] = r
			}
			if v.IsVector() {
				return VectorOf(FromSlice(out))
			}
			return ListOf(FromSlice(out))
		})
	case KindHashmap:
		return deeper(func() Value {
			out := NewHashmap()
			var excVal Value
			excFound := false
			v.Map.Each(func(k, val Value) bool {
				r := Eval(val, env)
				if r.IsException() {
					excVal, excFound = r, true
					return false
				}
				out.Set(k, r)
				return true
			})
			if excFound {
				return excVal
			}
			return HashmapOf(out)
		})
	default:
		return v
	}
}

// throwValue wraps v as a thrown Exception Value — the uniform shape the
// evaluator/builtins raise language-level errors in (spec.md §7's
// exception channel), distinct from a host panic.
func throwValue(v Value) Value {
	track("exception")
	return ExceptionOf(&Exception{Value: v})
}

func evalDef(ast Value, env *Env) Value {
	args := ast.List.Next
	name, _ := args.At(0)
	valForm, _ := args.At(1)
	if !name.IsSymbol() {
		throwHost("def!: expected a symbol")
	}
	v := Eval(valForm, env)
	if v.IsException() {
		return v
	}
	env.Set(name.SymbolName(), v)
	return v
}

func evalDefMacro(ast Value, env *Env) Value {
	args := ast.List.Next
	name, _ := args.At(0)
	valForm, _ := args.At(1)
	if !name.IsSymbol() {
		throwHost("defmacro!: expected a symbol")
	}
	v := Eval(valForm, env)
	if v.IsException() {
		return v
	}
	if v.Kind != KindFunction {
		throwHost("defmacro!: expected a function")
	}
	track("closure")
	macroFn := *v.Fn
	macroFn.IsMacro = true
	v = FunctionOf(&macroFn)
	env.Set(name.SymbolName(), v)
	return v
}

// evalLetTail builds the new binding frame for `let*` and returns it along
// with the body form to tail-evaluate in it.
func evalLetTail(ast Value, env *Env) (*Env, Value) {
	args := ast.List.Next
	bindingsForm, _ := args.At(0)
	bodyForm, _ := args.At(1)
	child := NewChildEnv(env)
	if !bindingsForm.IsSequential() {
		throwHost("let*: expected a binding list")
	}
	bindings := bindingsForm.List.ToSlice()
	if len(bindings)%2 != 0 {
		throwHost("let*: odd number of binding forms")
	}
	for i := 0; i+1 < len(bindings); i += 2 {
		if !bindings[i].IsSymbol() {
			throwHost("let*: binding name must be a symbol")
		}
		v := Eval(bindings[i+1], child)
		if v.IsException() {
			return child, wrapThrownAsForm(v)
		}
		child.Set(bindings[i].SymbolName(), v)
	}
	return child, bodyForm
}

// wrapThrownAsForm lets an exception raised mid-`let*`-binding still flow
// out of the trampoline: since the tail slot expects a form to Eval, not a
// Value, we wrap the already-evaluated exception in `(quote ...)` so the
// next trampoline turn returns it unchanged.
func wrapThrownAsForm(v Value) Value {
	return ListOf(FromSlice([]Value{Symbol("quote"), v}))
}

func evalIfTail(ast Value, env *Env) (Value, bool) {
	args := ast.List.Next
	condForm, _ := args.At(0)
	cond := Eval(condForm, env)
	if cond.IsException() {
		return wrapThrownAsForm(cond), true
	}
	if cond.IsTruthy() {
		thenForm, _ := args.At(1)
		return thenForm, true
	}
	elseForm, ok := args.At(2)
	if !ok {
		return Nil(), false
	}
	return elseForm, true
}

func evalFnStar(ast Value, env *Env) Value {
	args := ast.List.Next
	paramsForm, _ := args.At(0)
	bodyForm, _ := args.At(1)
	if !paramsForm.IsSequential() {
		throwHost("fn*: expected a parameter list")
	}
	params := paramsForm
	if params.IsVector() {
		params = ListOf(params.List)
	}
	variadic := false
	for cur := params.List; cur != nil; cur = cur.Next {
		if !cur.Value.IsSymbol() {
			throwHost("fn*: parameter names must be symbols")
		}
		if cur.Value.SymbolIs("&") {
			variadic = true
		}
	}
	track("closure")
	return FunctionOf(&Function{Params: params, Body: bodyForm, Env: env, IsVariadic: variadic})
}

// evalTryStar implements try*/catch* exactly as impls/c.3/step9_try.c's
// mal_eval_try does: evaluate the protected form; only on an Exception
// result do we evaluate the catch body, in a child of the catching env
// binding the caught value to the catch symbol.
func evalTryStar(ast Value, env *Env) Value {
	args := ast.List.Next
	protected, _ := args.At(0)
	result := Eval(protected, env)
	if !result.IsException() {
		return result
	}
	catchForm, ok := args.At(1)
	if !ok {
		return result
	}
	catchList := catchForm.List.ToSlice() // (catch* sym body)
	if len(catchList) < 3 || !catchList[0].SymbolIs("catch*") {
		return result
	}
	sym := catchList[1]
	body := catchList[2]
	child := NewChildEnv(env)
	child.Set(sym.SymbolName(), result.Exc.Value)
	return Eval(body, child)
}

// Apply calls fn with args outside the trampoline (used by builtins like
// `apply`/`map` that must invoke a MAL value from Go code, not from
// special-form dispatch).
func Apply(fn Value, args []Value) Value {
	switch fn.Kind {
	case KindBuiltin:
		return fn.Bi.Fn(args)
	case KindFunction:
		child, errMsg := Bind(fn.Fn.Env, paramSlice(fn.Fn.Params), fn.Fn.IsVariadic, args)
		if errMsg != "" {
			throwHost(errMsg)
		}
		return Eval(fn.Fn.Body, child)
	default:
		return throwValue(String("can't call non-function value"))
	}
}

// isMacroCall reports whether ast is a list whose head resolves, in env,
// to a macro Function.
func isMacroCall(ast Value, env *Env) (*Function, bool) {
	if !ast.IsList() || ast.IsEmpty() {
		return nil, false
	}
	head := ast.List.Value
	if !head.IsSymbol() {
		return nil, false
	}
	v, ok := env.Get(head.SymbolName())
	if !ok || v.Kind != KindFunction || !v.Fn.IsMacro {
		return nil, false
	}
	return v.Fn, true
}

// macroexpandFull repeatedly expands ast while its head names a macro,
// per spec.md §4.4's fixed-point macroexpansion rule.
func macroexpandFull(ast Value, env *Env) Value {
	for {
		fn, ok := isMacroCall(ast, env)
		if !ok {
			return ast
		}
		args := ast.List.Next.ToSlice()
		child, errMsg := Bind(fn.Env, paramSlice(fn.Params), fn.IsVariadic, args)
		if errMsg != "" {
			throwHost(errMsg)
		}
		ast = Eval(fn.Body, child)
	}
}
