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
	"os"
	"strings"

	"github.com/jetsetilly/debugdash/curated"
)

const sourceUnavailable = "cannot read source: %s"

// sourceWindow controls how many lines of context are shown either side of
// the current source line.
type sourceWindow struct {
	linesBefore int
	linesAfter  int
}

func newSourceWindow() sourceWindow {
	return sourceWindow{
		linesBefore: 5,
		linesAfter:  10,
	}
}

// sourceLine is one line of the computed window. the line containing the
// current execution point is marked.
type sourceLine struct {
	number  int
	content string
	current bool
}

// window reads the named file afresh and returns the lines around the
// current line, clamped to the file. the file is never cached because the
// debuggee may have been recompiled between stops.
func (win sourceWindow) window(filename string, currentLine int) ([]sourceLine, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(sourceUnavailable, err)
	}

	lines := strings.Split(string(b), "\n")

	// a trailing newline is not an extra line
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	startLine := currentLine - win.linesBefore
	if startLine < 1 {
		startLine = 1
	}
	endLine := currentLine + win.linesAfter
	if endLine > len(lines) {
		endLine = len(lines)
	}

	window := make([]sourceLine, 0, endLine-startLine+1)
	for n := startLine; n <= endLine; n++ {
		window = append(window, sourceLine{
			number:  n,
			content: strings.TrimRight(lines[n-1], " \t\r"),
			current: n == currentLine,
		})
	}

	return window, nil
}
