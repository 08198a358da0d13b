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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

const replPrompt = "user> "
const replContPrompt = "  ... "

// Repl implements the interactive front-end of spec.md §6: print
// "user> ", read one line, evaluate it, print the evaluator's response,
// loop until EOF. It is built on chzyer/readline for history and
// interrupt handling, the same library the teacher's own scm/prompt.go
// Repl uses, with the same "keep the partial line and re-prompt" trick
// for a form left open across a newline — except gomal detects that case
// by inspecting the host error's message rather than matching a single
// hardcoded panic string, since the reader here raises distinct messages
// per unmatched delimiter.
func Repl(env *Env, tracer *Tracer) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            replPrompt,
		HistoryFile:       ".gomal-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	pending := ""
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if pending == "" {
				break
			}
			pending = ""
			l.SetPrompt(replPrompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}

		full := pending + line
		if strings.TrimSpace(full) == "" {
			pending = ""
			l.SetPrompt(replPrompt)
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					if he, ok := r.(hostError); ok && isIncompleteForm(he) {
						pending = full + "\n"
						l.SetPrompt(replContPrompt)
						return
					}
					fmt.Fprintln(os.Stderr, "ERROR: "+errorMessage(r))
					pending = ""
					l.SetPrompt(replPrompt)
				}
			}()
			form, ok := ReadStr(full)
			pending = ""
			l.SetPrompt(replPrompt)
			if !ok {
				return
			}
			result := TopLevelEval(tracer, form, env)
			if result.IsException() {
				fmt.Println("Uncaught exception: " + PrStr(result.Exc.Value, true))
				return
			}
			fmt.Println(PrStr(result, true))
		}()
	}
}

// isIncompleteForm reports whether he signals an unterminated form (a
// missing closing delimiter or string quote) rather than a genuine
// syntax error, so the REPL can ask for one more line instead of
// abandoning the input.
func isIncompleteForm(he hostError) bool {
	return strings.HasSuffix(he.msg, "got EOF")
}

func errorMessage(r any) string {
	if he, ok := r.(hostError); ok {
		return he.msg
	}
	if err, ok := r.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(r)
}
