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

package terminal

// Style is used to hint at what the appearance of a line of text should be.
// How a Style is interpreted depends on the terminal implementation. An
// implementation is free to ignore any style it cannot express.
type Style int

// List of terminal styles.
const (
	// the prompt printed before input is read
	StylePrompt Style = iota

	// help text
	StyleHelp

	// terminal feedback for the result of a command
	StyleFeedback

	// a line of dashboard output. dashboard lines arrive with any colouring
	// already applied and must be printed verbatim
	StyleDashboard

	// output captured from the host debugger. like StyleDashboard, the host
	// may have applied its own colouring and the line must not be restyled
	StyleHostOutput

	// an entry from the central logger
	StyleLog

	// error messages. terminal implementations should display these even
	// when silenced
	StyleError
)

// IsPrompt returns true if the style is the prompt style. prompts are not
// terminated with a newline.
func (sty Style) IsPrompt() bool {
	return sty == StylePrompt
}
