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
	"github.com/google/btree"
)

// Function is the closure object behind a Value of KindFunction: a
// parameter list, an unevaluated body and the environment captured at
// `fn*` time (spec.md §3/§4.5). IsVariadic is precomputed once, at
// construction, by scanning Params for the `&` marker rather than
// re-scanning on every application.
type Function struct {
	Params     Value // List or Vector of parameter-name symbols
	Body       Value
	Env        *Env
	IsVariadic bool
	IsMacro    bool
}

// Builtin is a host-implemented primitive: a name (for `help`-style
// introspection and trace labels) plus the native implementation.
type Builtin struct {
	Name string
	Fn   func(args []Value) Value
}

// Atom is a first-class mutable reference cell (spec.md §3), distinct from
// the reader-level sense of "atom" meaning any non-list form.
type Atom struct {
	Value Value
}

// Exception wraps a thrown value so it can be distinguished, by identity,
// from an ordinary value that merely looks like one (spec.md §3).
type Exception struct {
	Value Value
}

// regEntry is one row of the object registry: a monotonic allocation
// sequence number (the generation) plus a human label for diagnostics.
// The sequence number is the btree ordering key: SweepBelow walks and
// deletes entries in allocation order, which a Go map's undefined
// iteration order could not provide.
type regEntry struct {
	seq   uint64
	label string
}

func regLess(a, b regEntry) bool { return a.seq < b.seq }

// Registry is the C6 object manager: every heap object the interpreter
// allocates — strings, cons cells, hashmaps, environments, closures,
// atoms, exceptions — is Tracked here via the process-wide registry
// installed by NewRootEnv. Go's own GC does the actual memory
// reclamation, per spec.md §3's "a pragmatic alternative ... free the
// whole registry at exit, since the interpreter is a short-lived
// process"; what the registry owns is the bookkeeping: which generations
// are still tracked, and when the proactive sweep (driven by
// -gc-threshold, see main.go) releases the oldest of them.
type Registry struct {
	seq       uint64
	tree      *btree.BTreeG[regEntry]
	threshold int // Track sweeps old generations once the tree exceeds this; 0 disables
}

// NewRegistry builds an empty registry. threshold is the tracked-object
// count above which Track releases the oldest generations instead of
// waiting for shutdown; pass 0 to only ever release in bulk at Shutdown,
// matching spec.md §5's baseline "free everything at exit" discipline.
func NewRegistry(threshold int) *Registry {
	return &Registry{tree: btree.NewG(32, regLess), threshold: threshold}
}

// Track registers a newly allocated object under label ("string", "cons",
// "hashmap", "env", "closure", "atom", "exception") and returns its
// generation. It never retains a pointer to the object itself: the
// registry tracks *that* something was allocated and *when*, not the
// object's memory, since Go's GC — not this registry — is what actually
// reclaims it. Above the configured threshold, Track releases the oldest
// half of the tracked generations.
func (r *Registry) Track(label string) uint64 {
	r.seq++
	r.tree.ReplaceOrInsert(regEntry{seq: r.seq, label: label})
	if r.threshold > 0 && r.tree.Len() > r.threshold {
		r.SweepBelow(r.seq - uint64(r.threshold)/2)
	}
	return r.seq
}

// SweepBelow releases every entry allocated before generation cutoff,
// walking the tree in ascending allocation order — the generational
// range delete the btree ordering exists for. Releasing an oldest prefix
// never follows internal pointers (spec.md §3's constraint on unordered
// release); it only drops bookkeeping rows, and a live Value is never
// invalidated. Returns how many entries were released.
func (r *Registry) SweepBelow(cutoff uint64) int {
	var victims []regEntry
	r.tree.AscendLessThan(regEntry{seq: cutoff}, func(e regEntry) bool {
		victims = append(victims, e)
		return true
	})
	for _, e := range victims {
		r.tree.Delete(e)
	}
	return len(victims)
}

// Shutdown tears the registry down in bulk, matching the single
// "initializes the registry ... then tears the registry down in bulk"
// lifecycle spec.md §5 describes for the top-level driver.
func (r *Registry) Shutdown() {
	r.tree.Clear(false)
}

// Len reports how many objects are currently tracked (for -gc-threshold
// diagnostics and tests).
func (r *Registry) Len() int { return r.tree.Len() }

// registry is the process-wide object registry of spec.md §5 ("the
// global object registry ... is process-wide state initialized once at
// startup"). NewRootEnv installs it; it stays nil in embeddings and
// tests that don't configure one, which disables tracking.
var registry *Registry

// track records one heap allocation in the process-wide registry, if any.
func track(label string) {
	if registry != nil {
		registry.Track(label)
	}
}
