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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/debugdash/test"
)

// writeSourceFile creates a file of the requested number of numbered lines.
func writeSourceFile(t *testing.T, numLines int) string {
	t.Helper()

	s := strings.Builder{}
	for i := 1; i <= numLines; i++ {
		s.WriteString(fmt.Sprintf("line %d\n", i))
	}

	filename := filepath.Join(t.TempDir(), "main.c")
	if err := os.WriteFile(filename, []byte(s.String()), 0600); err != nil {
		t.Fatal(err)
	}

	return filename
}

func TestSourceWindow(t *testing.T) {
	filename := writeSourceFile(t, 20)
	win := newSourceWindow()

	lines, err := win.window(filename, 10)
	test.ExpectedSuccess(t, err)

	// five lines before, ten after, plus the current line
	test.Equate(t, len(lines), 16)
	test.Equate(t, lines[0].number, 5)
	test.Equate(t, lines[15].number, 20)

	for _, ln := range lines {
		test.Equate(t, ln.current, ln.number == 10)
		test.Equate(t, ln.content, fmt.Sprintf("line %d", ln.number))
	}
}

func TestSourceWindowClamping(t *testing.T) {
	filename := writeSourceFile(t, 20)
	win := newSourceWindow()

	// near the top of the file the window starts at line one
	lines, err := win.window(filename, 3)
	test.ExpectedSuccess(t, err)
	test.Equate(t, lines[0].number, 1)
	test.Equate(t, lines[len(lines)-1].number, 13)

	// near the bottom the window stops at the last line
	lines, err = win.window(filename, 18)
	test.ExpectedSuccess(t, err)
	test.Equate(t, lines[0].number, 13)
	test.Equate(t, lines[len(lines)-1].number, 20)
}

func TestSourceWindowResize(t *testing.T) {
	filename := writeSourceFile(t, 20)

	win := newSourceWindow()
	win.linesBefore = 1
	win.linesAfter = 2

	lines, err := win.window(filename, 10)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(lines), 4)
	test.Equate(t, lines[0].number, 9)
	test.Equate(t, lines[3].number, 12)
}

func TestSourceWindowMissingFile(t *testing.T) {
	win := newSourceWindow()
	_, err := win.window(filepath.Join(t.TempDir(), "nonsuch.c"), 1)
	test.ExpectedFailure(t, err)
}
