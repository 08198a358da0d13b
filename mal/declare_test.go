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

func TestHelpKnownBuiltin(t *testing.T) {
	out := Help("cons")
	if out == "" {
		t.Fatalf("expected non-empty help text for cons")
	}
}

func TestHelpUnknownBuiltin(t *testing.T) {
	out := Help("not-a-real-builtin")
	if out != "function not found: not-a-real-builtin" {
		t.Fatalf("got %q", out)
	}
}

func TestHelpIndexListsBuiltins(t *testing.T) {
	out := Help("")
	if out == "" {
		t.Fatalf("expected a non-empty index")
	}
}
