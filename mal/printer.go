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
	"strconv"
	"strings"
)

// trimFloat formats an integer-valued float without a fractional part,
// e.g. 3 not 3.0 — matching how the teacher's own scm/printer.go prints
// whole-valued Scmer numbers.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimFloatG formats a non-integral float with the shortest round-tripping
// decimal representation.
func trimFloatG(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// PrStr renders v per spec.md §4.3: readable mode escapes strings and
// quotes them; display mode (used by `str`/`println`) prints string
// contents raw.
func PrStr(v Value, readable bool) string {
	var b strings.Builder
	writeValue(&b, v, readable)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, readable bool) {
	switch v.Kind {
	case KindNil:
		b.WriteString("nil")
	case KindTrue:
		b.WriteString("true")
	case KindFalse:
		b.WriteString("false")
	case KindNumber:
		b.WriteString(formatNumber(v.Num))
	case KindSymbol:
		b.WriteString(v.Str.Text())
	case KindKeyword:
		b.WriteString(v.Str.Text())
	case KindString:
		if readable {
			b.WriteByte('"')
			b.WriteString(escape(v.Str.Text()))
			b.WriteByte('"')
		} else {
			b.WriteString(v.Str.Text())
		}
	case KindList:
		writeSeq(b, v.List, "(", ")", readable)
	case KindVector:
		writeSeq(b, v.List, "[", "]", readable)
	case KindHashmap:
		writeHashmap(b, v.Map, readable)
	case KindFunction:
		b.WriteString("#<function>")
	case KindBuiltin:
		b.WriteString("#<builtin>")
	case KindAtom:
		b.WriteString("(atom ")
		writeValue(b, v.At.Value, readable)
		b.WriteByte(')')
	case KindException:
		b.WriteString("#<exception:")
		writeValue(b, v.Exc.Value, readable)
		b.WriteByte('>')
	default:
		b.WriteString("#<unknown>")
	}
}

func writeSeq(b *strings.Builder, l *List, open, close string, readable bool) {
	b.WriteString(open)
	for cur, first := l, true; cur != nil; cur = cur.Next {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		writeValue(b, cur.Value, readable)
	}
	b.WriteString(close)
}

func writeHashmap(b *strings.Builder, h *Hashmap, readable bool) {
	b.WriteByte('{')
	first := true
	h.Each(func(k, v Value) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		writeValue(b, k, readable)
		b.WriteByte(' ')
		writeValue(b, v, readable)
		return true
	})
	b.WriteByte('}')
}
