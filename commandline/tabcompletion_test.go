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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/debugdash/commandline"
	"github.com/jetsetilly/debugdash/test"
)

func TestTabCompletion(t *testing.T) {
	cmds := commandline.Commands{
		"REGISTER": {},
		"REORDER":  {},
		"QUIT":     {},
	}
	tc := commandline.NewTabCompletion(cmds)

	// cycling through the matches for a shared prefix, in alphabetical
	// order, and wrapping around
	test.Equate(t, tc.Complete("re"), "REGISTER ")
	test.Equate(t, tc.Complete("REGISTER"), "REORDER ")
	test.Equate(t, tc.Complete("REORDER"), "REGISTER ")

	tc.Reset()

	test.Equate(t, tc.Complete("q"), "QUIT ")

	// no match leaves the input alone
	tc.Reset()
	test.Equate(t, tc.Complete("xyz"), "xyz")

	// arguments are not completed
	tc.Reset()
	test.Equate(t, tc.Complete("REGISTER a"), "REGISTER a")
}
