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

// List is an immutable singly linked cons cell, shared by List and Vector
// Values alike (spec.md §3: "Vector ... same underlying representation as
// List"). A nil *List is the empty list. Lists share tails by convention:
// Prepend returns a new head sharing the old tail; nothing here ever
// mutates a Value or Next already handed out.
type List struct {
	Value Value
	Next  *List
}

// Prepend builds a new head for tail, sharing tail itself (no copy).
// Every cons cell in the interpreter is allocated here, so this is the
// list side of the object registry's coverage.
func Prepend(v Value, tail *List) *List {
	track("cons")
	return &List{Value: v, Next: tail}
}

// Len walks the chain; O(n), as there is no cached length (the teacher's
// own cons-list builtins — scm/list.go's "count" — walk for the same
// reason).
func (l *List) Len() int {
	n := 0
	for ; l != nil; l = l.Next {
		n++
	}
	return n
}

// FromSlice builds a list by prepending from the last element to the
// first, so elements keep their original order.
func FromSlice(vs []Value) *List {
	var head *List
	for i := len(vs) - 1; i >= 0; i-- {
		head = Prepend(vs[i], head)
	}
	return head
}

// ToSlice linearizes l into a freshly allocated slice; used by builtins
// and the evaluator wherever random access or a length precheck is
// simpler than walking cons cells by hand.
func (l *List) ToSlice() []Value {
	out := make([]Value, 0, l.Len())
	for ; l != nil; l = l.Next {
		out = append(out, l.Value)
	}
	return out
}

// At returns the ith element (0-based), and whether that index existed.
// A negative index is always out of range.
func (l *List) At(i int) (Value, bool) {
	if i < 0 {
		return Value{}, false
	}
	for ; l != nil && i > 0; i-- {
		l = l.Next
	}
	if l == nil {
		return Value{}, false
	}
	return l.Value, true
}

// Append concatenates a and b, copying a's spine (b is shared as the new
// tail) — this is the "traverses and may allocate" append spec.md §3
// describes.
func Append(a, b *List) *List {
	items := a.ToSlice()
	tail := b
	for i := len(items) - 1; i >= 0; i-- {
		tail = Prepend(items[i], tail)
	}
	return tail
}

// Reverse rebuilds l in reverse order.
func Reverse(l *List) *List {
	var out *List
	for ; l != nil; l = l.Next {
		out = Prepend(l.Value, out)
	}
	return out
}

// Concat appends every list in lists in order, sharing no intermediate
// allocation beyond what Append needs.
func Concat(lists ...*List) *List {
	if len(lists) == 0 {
		return nil
	}
	result := lists[len(lists)-1]
	for i := len(lists) - 2; i >= 0; i-- {
		result = Append(lists[i], result)
	}
	return result
}
