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
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/docker/go-units"
	"github.com/fsnotify/fsnotify"

	"github.com/launix-de/gomal/mal"
)

func main() {
	traceFile := flag.String("trace", "", "write a JSON eval trace to FILE")
	gcThreshold := flag.String("gc-threshold", "", "proactively sweep the object registry above SIZE objects (human size, e.g. 64Ki)")
	watch := flag.Bool("watch", false, "with a script argument, re-run it whenever the file changes")
	maxDepth := flag.Int("max-depth", mal.MaxDepth, "maximum non-tail recursion depth before a host error is raised")
	flag.Parse()

	mal.MaxDepth = *maxDepth

	threshold := 0
	if *gcThreshold != "" {
		n, err := units.RAMInBytes(*gcThreshold)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR: -gc-threshold: "+err.Error())
			os.Exit(1)
		}
		threshold = int(n)
	}
	reg := mal.NewRegistry(threshold)
	defer reg.Shutdown()

	args := flag.Args()
	var scriptFile string
	var argv []string
	if len(args) > 0 {
		scriptFile, argv = args[0], args[1:]
	}

	root := mal.NewRootEnv(reg, argv)

	var tracer *mal.Tracer
	if *traceFile != "" {
		f, err := os.Create(*traceFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR: -trace: "+err.Error())
			os.Exit(1)
		}
		tracer = mal.NewTracer(f)
		defer tracer.Close()
	}

	if scriptFile == "" {
		mal.Repl(root, tracer)
		return
	}

	runScript(root, tracer, scriptFile)
	if *watch {
		watchScript(root, tracer, scriptFile)
	}
}

// runScript evaluates (load-file scriptFile) once, printing a host error
// or an uncaught exception with the REPL's message format (both to
// stderr here, where the REPL prints exceptions to stdout) but without
// dropping the exit code to non-zero — spec.md §6: "exits 0 if no
// uncaught exception, otherwise prints the exception and exits 0".
func runScript(root *mal.Env, tracer *mal.Tracer, scriptFile string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "ERROR: "+fmt.Sprint(r))
		}
	}()
	form, ok := mal.ReadStr(`(load-file "` + escapePathForMal(scriptFile) + `")`)
	if !ok {
		return
	}
	result := mal.TopLevelEval(tracer, form, root)
	if result.IsException() {
		fmt.Fprintln(os.Stderr, "Uncaught exception: "+mal.PrStr(result.Exc.Value, true))
	}
}

// escapePathForMal backslash-escapes the two bytes the reader's string
// literal grammar (spec.md §4.1/§4.2) treats specially, so a path
// containing a quote or backslash still round-trips through read-string.
func escapePathForMal(path string) string {
	out := make([]byte, 0, len(path))
	for i := 0; i < len(path); i++ {
		if path[i] == '"' || path[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, path[i])
	}
	return string(out)
}

// watchScript turns `-watch` into a live-reload loop over load-file: an
// ambient CLI nicety layered on top of the out-of-scope `load-file`
// collaborator (spec.md §1), not a core language feature. It blocks
// until the watched file is removed or the process is interrupted.
func watchScript(root *mal.Env, tracer *mal.Tracer, scriptFile string) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: -watch: "+err.Error())
		return
	}
	defer w.Close()
	if err := w.Add(scriptFile); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR: -watch: "+err.Error())
		return
	}
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Remove != 0 {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				runScript(root, tracer, scriptFile)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			fmt.Fprintln(os.Stderr, "ERROR: -watch: "+err.Error())
		}
	}
}
