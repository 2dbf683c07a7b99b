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

package commandline

import (
	"strings"
)

// TabCompletion cycles through the command keywords that match the prefix so
// far typed. Only the command word itself is completed; arguments are left
// alone.
type TabCompletion struct {
	cmds Commands

	// the prefix being matched and the matches found, during a cycle
	prefix  string
	matches []string
	next    int
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(cmds Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete implements the terminal.TabCompletion interface.
func (tc *TabCompletion) Complete(input string) string {
	// completion only makes sense while the command word is being typed. a
	// trailing space is the result of a previous completion, not the start
	// of an argument
	if strings.Contains(strings.TrimSpace(input), " ") {
		return input
	}

	p := strings.ToUpper(strings.TrimSpace(input))

	if tc.matches == nil || p != tc.prefix && !tc.matched(p) {
		tc.prefix = p
		tc.matches = tc.matches[:0]
		for _, k := range tc.cmds.List() {
			if strings.HasPrefix(k, p) {
				tc.matches = append(tc.matches, k)
			}
		}
		tc.next = 0
	}

	if len(tc.matches) == 0 {
		return input
	}

	m := tc.matches[tc.next]
	tc.next = (tc.next + 1) % len(tc.matches)

	return m + " "
}

// matched returns true if s is one of the current matches (ie. the result of
// a previous completion that the user is cycling through).
func (tc *TabCompletion) matched(s string) bool {
	s = strings.TrimSpace(s)
	for _, m := range tc.matches {
		if s == m {
			return true
		}
	}
	return false
}

// Reset implements the terminal.TabCompletion interface.
func (tc *TabCompletion) Reset() {
	tc.prefix = ""
	tc.matches = nil
	tc.next = 0
}
