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
	"github.com/jetsetilly/debugdash/terminal/colorterm/easyterm/ansi"
)

// formatter colors fragments of dashboard output. styling is applied inside
// a line, not to the whole line, so formatted lines must be printed with a
// style the terminal passes through verbatim.
//
// when the terminal cannot support styling the formatter passes text
// through unchanged.
type formatter struct {
	enabled bool
}

func (f formatter) wrap(pen string, text string) string {
	if !f.enabled {
		return text
	}
	return pen + text + ansi.NormalPen
}

// heading is for block titles and field labels.
func (f formatter) heading(text string) string {
	return f.wrap(ansi.PenStyles["bold"], text)
}

// value is for resolved values. register contents, summary counts.
func (f formatter) value(text string) string {
	return f.wrap(ansi.Pens["green"], text)
}

// info is for names and incidental detail.
func (f formatter) info(text string) string {
	return f.wrap(ansi.Pens["cyan"], text)
}

// ref is for addresses, indexes and other identifying keys.
func (f formatter) ref(text string) string {
	return f.wrap(ansi.Pens["blue"], text)
}

// highlight is for the line at the current execution point.
func (f formatter) highlight(text string) string {
	return f.wrap(ansi.Pens["white"], text)
}
