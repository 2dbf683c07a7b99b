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

package console_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/debugdash/console"
	"github.com/jetsetilly/debugdash/demohost"
	"github.com/jetsetilly/debugdash/terminal"
	"github.com/jetsetilly/debugdash/test"
)

// scriptTerm feeds a canned list of input lines to the console and records
// everything printed back.
type scriptTerm struct {
	input  []string
	output []string
}

func (trm *scriptTerm) Initialise() error                              { return nil }
func (trm *scriptTerm) CleanUp()                                       {}
func (trm *scriptTerm) RegisterTabCompletion(terminal.TabCompletion)   {}
func (trm *scriptTerm) Silence(bool)                                   {}
func (trm *scriptTerm) TermReadCheck() bool                            { return false }
func (trm *scriptTerm) IsInteractive() bool                            { return false }
func (trm *scriptTerm) TermWidth() int                                 { return 80 }
func (trm *scriptTerm) SupportsStyle() bool                            { return false }

func (trm *scriptTerm) TermPrintLine(_ terminal.Style, s string) {
	trm.output = append(trm.output, s)
}

func (trm *scriptTerm) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	if len(trm.input) == 0 {
		return 0, io.EOF
	}

	s := trm.input[0] + "\n"
	trm.input = trm.input[1:]
	copy(buffer, s)

	return len(s), nil
}

func (trm *scriptTerm) contains(sub string) bool {
	for _, l := range trm.output {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func runScript(t *testing.T, input ...string) *scriptTerm {
	t.Helper()

	trm := &scriptTerm{input: input}

	hst, err := demohost.NewDemoHost(trm)
	test.ExpectedSuccess(t, err)

	con := console.NewConsole(hst, hst, trm)
	test.ExpectedSuccess(t, con.Run())

	return trm
}

func TestConsoleQuit(t *testing.T) {
	trm := runScript(t, "QUIT")

	// the initial stop is rendered before the first prompt
	test.Equate(t, trm.output[0], "Thread ID: 1")
}

func TestConsoleStep(t *testing.T) {
	trm := runScript(t,
		"REGISTER ADD pc",
		"STEP",
		"QUIT",
	)

	test.Equate(t, trm.contains("Added 1 register(s) to display list"), true)

	// the dashboard rendered after the step shows the new pc
	test.Equate(t, trm.contains("pc       = 0x80000004"), true)
}

func TestConsoleErrors(t *testing.T) {
	trm := runScript(t,
		"XYZZY",
		"REGISTER ADD nonsuch",
		"QUIT",
	)

	test.Equate(t, trm.contains("unrecognised command: XYZZY"), true)
	test.Equate(t, trm.contains("failed to add register(s): nonsuch"), true)
}

func TestConsoleHelp(t *testing.T) {
	trm := runScript(t, "HELP", "QUIT")

	test.Equate(t, trm.contains("Leave the console"), true)
	test.Equate(t, trm.contains("Render the dashboard now (CLEAR to clear the screen first)"), true)
}
