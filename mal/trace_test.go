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
	"encoding/json"
	"os"
	"testing"
)

func TestTracerWritesValidJSONArray(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "trace-*.json")
	if err != nil {
		t.Fatalf("tempfile: %v", err)
	}
	path := f.Name()
	tracer := NewTracer(f)

	env := NewRootEnv(nil, nil)
	form, _ := ReadStr("(+ 1 2)")
	TopLevelEval(tracer, form, env)
	form2, _ := ReadStr(`(throw "boom")`)
	TopLevelEval(tracer, form2, env)
	tracer.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace file: %v", err)
	}
	var events []map[string]any
	if err := json.Unmarshal(b, &events); err != nil {
		t.Fatalf("trace file is not valid JSON: %v\n%s", err, b)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 trace events, got %d", len(events))
	}
	if events[0]["result"] != "3" {
		t.Fatalf("expected first event result 3, got %v", events[0])
	}
	if events[1]["error"] != `"boom"` {
		t.Fatalf("expected second event error \"boom\", got %v", events[1])
	}
}

func TestTopLevelEvalWithNilTracerJustEvals(t *testing.T) {
	env := NewRootEnv(nil, nil)
	form, _ := ReadStr("(+ 1 2)")
	v := TopLevelEval(nil, form, env)
	if PrStr(v, true) != "3" {
		t.Fatalf("got %s", PrStr(v, true))
	}
}
