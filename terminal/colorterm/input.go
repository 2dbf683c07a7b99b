// This file is part of DebugDash.
//
// DebugDash is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DebugDash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DebugDash.  If not, see <https://www.gnu.org/licenses/>.

package colorterm

import (
	"unicode"

	"github.com/jetsetilly/debugdash/curated"
	"github.com/jetsetilly/debugdash/terminal"
	"github.com/jetsetilly/debugdash/terminal/colorterm/easyterm"
	"github.com/jetsetilly/debugdash/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
//
// Editing is intentionally basic: printable characters, backspace and tab
// completion. The read is abandoned cleanly if an interrupt signal arrives
// on the events channels.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.CBreakMode()
	defer ct.CanonicalMode()

	ct.TermPrint("\r")
	ct.TermPrint(ansi.PenStyles["bold"])
	ct.TermPrint(prompt.String())
	ct.TermPrint(ansi.NormalPen)

	n := 0

	for {
		var ev readerEvent

		select {
		case ev = <-ct.reader:
		case <-events.IntEvents:
			ct.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)
		}

		if ev.err != nil {
			return n, ev.err
		}

		switch ev.b {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			ct.TermPrint("\n")
			return n + 1, nil

		case easyterm.KeyTab:
			if ct.tabCompleter != nil {
				s := ct.tabCompleter.Complete(string(input[:n]))

				// erase the current input and reprint the completed input
				for i := 0; i < n; i++ {
					ct.TermPrint(ansi.CursorBackwardOne)
					ct.TermPrint(" ")
					ct.TermPrint(ansi.CursorBackwardOne)
				}
				ct.TermPrint(s)

				copy(input, s)
				n = len(s)
			}

		case easyterm.KeyBackspace:
			if n > 0 {
				n--
				ct.TermPrint(ansi.CursorBackwardOne)
				ct.TermPrint(" ")
				ct.TermPrint(ansi.CursorBackwardOne)
			}

		case easyterm.KeyEsc:
			// swallow the remainder of simple escape sequences. cursor keys
			// are not supported by this terminal
			ev = <-ct.reader
			if ev.b == easyterm.EscCursor {
				<-ct.reader
			}

		default:
			if n < len(input)-1 && unicode.IsPrint(rune(ev.b)) {
				ct.TermPrint(string(ev.b))
				input[n] = ev.b
				n++
			}
		}
	}
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return false
}
