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

// Package colorterm implements the terminal.Terminal interface for posix
// terminals with ANSI styling. Input is read in cbreak mode, allowing tab
// completion and the monitoring of external events while the read is in
// progress.
package colorterm

import (
	"os"

	"github.com/jetsetilly/debugdash/terminal"
	"github.com/jetsetilly/debugdash/terminal/colorterm/easyterm"
)

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	easyterm.Terminal

	reader       chan readerEvent
	tabCompleter terminal.TabCompletion
	silenced     bool
}

type readerEvent struct {
	b   byte
	err error
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.Terminal.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	// the reader goroutine lasts for the lifetime of the terminal. input
	// bytes are forwarded over a channel so that TermRead() can select
	// between user input and external events.
	ct.reader = make(chan readerEvent)
	go func() {
		b := make([]byte, 1)
		for {
			n, err := ct.Terminal.Read(b)
			if n > 0 {
				ct.reader <- readerEvent{b: b[0]}
			} else if err != nil {
				ct.reader <- readerEvent{err: err}
				return
			}
		}
	}()

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	ct.Terminal.CleanUp()
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// terminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompleter = tc
}

// IsInteractive satisfies the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermWidth implements the terminal.Output interface.
func (ct *ColorTerminal) TermWidth() int {
	g := ct.GetGeometry()
	if g.Cols == 0 {
		return 80
	}
	return int(g.Cols)
}

// SupportsStyle implements the terminal.Output interface.
func (ct *ColorTerminal) SupportsStyle() bool {
	return true
}
