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

package dashboard

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/debugdash/logger"
	"github.com/jetsetilly/debugdash/terminal"
)

// print a line of dashboard output. dashboard lines carry their own styling
// so they are printed with a style the terminal does not decorate.
func (dsh *Dashboard) print(s string, a ...interface{}) {
	dsh.trm.TermPrintLine(terminal.StyleDashboard, fmt.Sprintf(s, a...))
}

// printError reports a block failure inline. the failure also goes to the
// central log so it survives the next screen clear.
func (dsh *Dashboard) printError(s string, a ...interface{}) {
	logger.Logf("dashboard", s, a...)
	dsh.trm.TermPrintLine(terminal.StyleError, fmt.Sprintf(s, a...))
}

// rule prints a horizontal separator spanning the terminal.
func (dsh *Dashboard) rule() {
	dsh.print(strings.Repeat("-", dsh.trm.TermWidth()))
}

// pad returns n spaces, or nothing when the text being padded is already
// wider than the field.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
