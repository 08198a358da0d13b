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

import "testing"

func TestRegistryTrackAssignsMonotonicGenerations(t *testing.T) {
	r := NewRegistry(0)
	a := r.Track("atom")
	b := r.Track("env")
	if b <= a {
		t.Fatalf("generations should be strictly increasing: %d then %d", a, b)
	}
	if r.Len() != 2 {
		t.Fatalf("got %d tracked objects, want 2", r.Len())
	}
}

func TestRegistrySweepBelowReleasesOldestGenerations(t *testing.T) {
	r := NewRegistry(0)
	for i := 0; i < 10; i++ {
		r.Track("cons")
	}
	released := r.SweepBelow(6)
	if released != 5 {
		t.Fatalf("SweepBelow(6) released %d entries, want the 5 oldest", released)
	}
	if r.Len() != 5 {
		t.Fatalf("got %d tracked objects after sweep, want 5", r.Len())
	}
	if n := r.SweepBelow(6); n != 0 {
		t.Fatalf("a repeated sweep below the same cutoff released %d more entries", n)
	}
}

func TestRegistryThresholdTriggersGenerationalSweep(t *testing.T) {
	r := NewRegistry(10)
	for i := 0; i < 100; i++ {
		r.Track("string")
	}
	if r.Len() > 11 {
		t.Fatalf("threshold sweep did not bound the registry: %d tracked objects", r.Len())
	}
}

func TestRegistryCoversInterpreterAllocations(t *testing.T) {
	r := NewRegistry(0)
	env := NewRootEnv(r, nil)
	defer func() { registry = nil }()
	if r.Len() == 0 {
		t.Fatalf("building the root env should have tracked heap allocations")
	}
	before := r.Len()
	evalSrc(t, env, `(def! f (fn* (x) (atom (list x))))`)
	evalSrc(t, env, `(f (hash-map "k" 1))`)
	if r.Len() <= before {
		t.Fatalf("evaluating allocating forms should grow the registry: %d -> %d", before, r.Len())
	}
	r.Shutdown()
	if r.Len() != 0 {
		t.Fatalf("Shutdown should release every tracked object, %d left", r.Len())
	}
}
