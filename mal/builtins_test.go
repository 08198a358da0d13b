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
	"os"
	"testing"
)

func TestBuiltinArithmeticAndCompare(t *testing.T) {
	env := NewRootEnv(nil, nil)
	if got := rep(t, env, "(- 10 2 3)"); got != "5" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(/ 12 2 3)"); got != "2" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(< 1 2 3)"); got != "true" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(< 1 3 2)"); got != "false" {
		t.Fatalf("got %s", got)
	}
}

func TestBuiltinFirstRestOnEmptyAndNil(t *testing.T) {
	env := NewRootEnv(nil, nil)
	if got := rep(t, env, "(first nil)"); got != "nil" {
		t.Fatalf("(first nil) = %s, want nil", got)
	}
	if got := rep(t, env, "(first (list))"); got != "nil" {
		t.Fatalf("(first (list)) = %s, want nil", got)
	}
	if got := rep(t, env, "(rest nil)"); got != "()" {
		t.Fatalf("(rest nil) = %s, want ()", got)
	}
	if got := rep(t, env, "(rest (list))"); got != "()" {
		t.Fatalf("(rest (list)) = %s, want ()", got)
	}
}

func TestBuiltinAssocDissocGetContains(t *testing.T) {
	env := NewRootEnv(nil, nil)
	evalSrc(t, env, `(def! m (hash-map "a" 1))`)
	if got := rep(t, env, `(get (assoc m "b" 2) "b")`); got != "2" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, `(contains? (dissoc m "a") "a")`); got != "false" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, `(get m "missing")`); got != "nil" {
		t.Fatalf("get of a missing key should be nil, got %s", got)
	}
	if got := rep(t, env, `(get nil "x")`); got != "nil" {
		t.Fatalf("get on nil should be nil, got %s", got)
	}
}

func TestBuiltinApplyAndMap(t *testing.T) {
	env := NewRootEnv(nil, nil)
	if got := rep(t, env, "(apply + 1 2 (list 3 4))"); got != "10" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(map (fn* (x) (* x 2)) (list 1 2 3))"); got != "(2 4 6)" {
		t.Fatalf("got %s", got)
	}
}

func TestBuiltinStrAndPrStr(t *testing.T) {
	env := NewRootEnv(nil, nil)
	if got := rep(t, env, `(str "a" 1 "b")`); got != `"a1b"` {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, `(pr-str "a" 1)`); got != `"\"a\" 1"` {
		t.Fatalf("got %s", got)
	}
}

func TestBuiltinReadStringSlurpRoundtrip(t *testing.T) {
	env := NewRootEnv(nil, nil)
	f, err := os.CreateTemp(t.TempDir(), "gomal-*.mal")
	if err != nil {
		t.Fatalf("tempfile: %v", err)
	}
	if _, err := f.WriteString("(+ 1 2)"); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	env.Set("*test-file*", String(f.Name()))
	if got := rep(t, env, `(read-string (slurp *test-file*))`); got != "(+ 1 2)" {
		t.Fatalf("got %s", got)
	}
}

func TestBuiltinLoadFile(t *testing.T) {
	env := NewRootEnv(nil, nil)
	f, err := os.CreateTemp(t.TempDir(), "gomal-*.mal")
	if err != nil {
		t.Fatalf("tempfile: %v", err)
	}
	if _, err := f.WriteString(`(def! loaded-value (+ 20 1))`); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	env.Set("*test-file*", String(f.Name()))
	evalSrc(t, env, `(load-file *test-file*)`)
	if got := rep(t, env, "loaded-value"); got != "21" {
		t.Fatalf("got %s", got)
	}
}

func TestBuiltinThrowNonStringValue(t *testing.T) {
	env := NewRootEnv(nil, nil)
	v := evalSrc(t, env, `(try* (throw (list 1 2)) (catch* e e))`)
	if got := PrStr(v, true); got != "(1 2)" {
		t.Fatalf("got %s, want (1 2)", got)
	}
}

func TestBuiltinGensymUniqueness(t *testing.T) {
	env := NewRootEnv(nil, nil)
	a := rep(t, env, "(gensym)")
	b := rep(t, env, "(gensym)")
	if a == b {
		t.Fatalf("two gensym calls returned the same symbol: %s", a)
	}
}

func TestBuiltinParserMatchesLiteral(t *testing.T) {
	env := NewRootEnv(nil, nil)
	evalSrc(t, env, `(def! p (parser "hello"))`)
	if got := rep(t, env, `(p "hello")`); got != `"hello"` {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, `(p "world")`); got != "nil" {
		t.Fatalf("got %s, want nil", got)
	}
}

func TestBuiltinArithmeticTypeMismatchIsCatchable(t *testing.T) {
	env := NewRootEnv(nil, nil)
	v := evalSrc(t, env, `(try* (+ 1 "two") (catch* e e))`)
	if !v.IsString() {
		t.Fatalf("arithmetic on a non-number should raise a catchable exception, got %s", PrStr(v, true))
	}
	v = evalSrc(t, env, `(< 1 nil)`)
	if !v.IsException() {
		t.Fatalf("comparison on a non-number should return an exception, got %s", PrStr(v, true))
	}
}

func TestBuiltinGetBadKeyIsCatchable(t *testing.T) {
	env := NewRootEnv(nil, nil)
	v := evalSrc(t, env, `(try* (get (hash-map) 5) (catch* e e))`)
	if !v.IsString() {
		t.Fatalf("a bad map key should raise a catchable exception, got %s", PrStr(v, true))
	}
	v = evalSrc(t, env, `(contains? (hash-map) (list))`)
	if !v.IsException() {
		t.Fatalf("contains? with a bad key should return an exception, got %s", PrStr(v, true))
	}
}

func TestBuiltinCountEmptyOnNil(t *testing.T) {
	env := NewRootEnv(nil, nil)
	if got := rep(t, env, "(count nil)"); got != "0" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(empty? (list))"); got != "true" {
		t.Fatalf("got %s", got)
	}
	if got := rep(t, env, "(empty? (vector 1))"); got != "false" {
		t.Fatalf("got %s", got)
	}
	defer func() {
		if _, ok := recover().(hostError); !ok {
			t.Fatalf("(empty? nil) should raise a host error, not return a boolean")
		}
	}()
	evalSrc(t, env, "(empty? nil)")
}
