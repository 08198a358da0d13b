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

// Hashmap is an open-addressed, linear-probed, string-keyed map (spec.md
// §3/§4). An empty slot is marked by a nil key.Str (the "zero-string
// pointer" the spec calls for). Capacity starts at 8 and doubles whenever
// size would exceed 0.75 * capacity. Deletion is not supported directly —
// dissoc is a copy-except, built on top of With/Without below — so no
// tombstone bookkeeping is needed.
//
// This is the same "hash the key, probe for a slot" idea the teacher's own
// FastDict (scm/assoc_fast.go) uses, but that type chains collisions in a
// Go map keyed by hash bucket; spec.md requires true open addressing with
// linear probing, so the slot array here is probed directly instead.
type Hashmap struct {
	keys     []Value
	vals     []Value
	occupied int
}

const initialHashmapCapacity = 8
const hashmapLoadFactor = 0.75

// NewHashmap returns an empty hashmap at the spec-mandated initial
// capacity.
func NewHashmap() *Hashmap {
	track("hashmap")
	return &Hashmap{
		keys: make([]Value, initialHashmapCapacity),
		vals: make([]Value, initialHashmapCapacity),
	}
}

func keyHash(k Value) uint64 {
	if k.Str == nil {
		panic(hostError{"hashmap key must be a symbol, keyword or string"})
	}
	return k.Str.Hash()
}

func (h *Hashmap) slotFor(k Value, keys []Value) int {
	cap := len(keys)
	idx := int(keyHash(k) % uint64(cap))
	for i := 0; i < cap; i++ {
		slot := (idx + i) % cap
		if keys[slot].Str == nil {
			return slot
		}
		if keys[slot].Kind == k.Kind && keys[slot].Str.Equal(k.Str) {
			return slot
		}
	}
	panic(hostError{"hashmap probe exhausted capacity"})
}

func (h *Hashmap) grow() {
	oldKeys, oldVals := h.keys, h.vals
	newCap := len(oldKeys) * 2
	h.keys = make([]Value, newCap)
	h.vals = make([]Value, newCap)
	for i, k := range oldKeys {
		if k.Str == nil {
			continue
		}
		slot := h.slotFor(k, h.keys)
		h.keys[slot] = k
		h.vals[slot] = oldVals[i]
	}
}

// Set inserts or overwrites key k with value v. k must satisfy
// IsValidHashmapKey; callers (the evaluator, builtins) are responsible for
// raising the language-level exception on a bad key before calling Set.
func (h *Hashmap) Set(k, v Value) {
	if float64(h.occupied+1) > hashmapLoadFactor*float64(len(h.keys)) {
		h.grow()
	}
	slot := h.slotFor(k, h.keys)
	if h.keys[slot].Str == nil {
		h.occupied++
	}
	h.keys[slot] = k
	h.vals[slot] = v
}

// Get looks up k, reporting whether it was present.
func (h *Hashmap) Get(k Value) (Value, bool) {
	if len(h.keys) == 0 {
		return Value{}, false
	}
	slot := h.slotFor(k, h.keys)
	if h.keys[slot].Str == nil {
		return Value{}, false
	}
	return h.vals[slot], true
}

// Has reports key presence without returning the value.
func (h *Hashmap) Has(k Value) bool {
	_, ok := h.Get(k)
	return ok
}

// Size returns the number of occupied slots.
func (h *Hashmap) Size() int { return h.occupied }

// Each calls fn for every key/value pair in an unspecified order, stopping
// early if fn returns false.
func (h *Hashmap) Each(fn func(k, v Value) bool) {
	for i, k := range h.keys {
		if k.Str == nil {
			continue
		}
		if !fn(k, h.vals[i]) {
			return
		}
	}
}

// Clone makes an independent copy suitable for copy-on-write operations
// like assoc/dissoc.
func (h *Hashmap) Clone() *Hashmap {
	track("hashmap")
	out := &Hashmap{
		keys:     make([]Value, len(h.keys)),
		vals:     make([]Value, len(h.vals)),
		occupied: h.occupied,
	}
	copy(out.keys, h.keys)
	copy(out.vals, h.vals)
	return out
}

// With returns a copy of h with every (k, v) pair in kvs set — the
// implementation behind the `assoc` builtin.
func (h *Hashmap) With(kvs []Value) *Hashmap {
	out := h.Clone()
	for i := 0; i+1 < len(kvs); i += 2 {
		out.Set(kvs[i], kvs[i+1])
	}
	return out
}

// Without returns a copy of h with every key in keys removed — the
// implementation behind the `dissoc` builtin. Because open addressing with
// linear probing breaks on naive in-place deletion (it would orphan
// probe chains), Without rebuilds from scratch rather than punching holes.
func (h *Hashmap) Without(drop []Value) *Hashmap {
	out := NewHashmap()
	h.Each(func(k, v Value) bool {
		for _, d := range drop {
			if k.Kind == d.Kind && k.Str.Equal(d.Str) {
				return true
			}
		}
		out.Set(k, v)
		return true
	})
	return out
}

// Keys and Vals back the `keys`/`vals` builtins.
func (h *Hashmap) Keys() []Value {
	out := make([]Value, 0, h.occupied)
	h.Each(func(k, _ Value) bool { out = append(out, k); return true })
	return out
}

func (h *Hashmap) Vals() []Value {
	out := make([]Value, 0, h.occupied)
	h.Each(func(_, v Value) bool { out = append(out, v); return true })
	return out
}
