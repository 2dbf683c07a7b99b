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
	"testing"

	"github.com/jetsetilly/debugdash/test"
)

func TestTrackedRegisters(t *testing.T) {
	hst := newMockHost()
	lst := newTrackedList("$")

	test.Equate(t, lst.add(hst, "pc"), true)
	test.Equate(t, lst.add(hst, "sp"), true)

	// duplicates are rejected
	test.Equate(t, lst.add(hst, "pc"), false)
	test.Equate(t, lst.len(), 2)

	// a name the host cannot resolve is rejected
	test.Equate(t, lst.add(hst, "nonsuch"), false)
	test.Equate(t, lst.len(), 2)

	test.Equate(t, lst.remove("pc"), true)
	test.Equate(t, lst.remove("pc"), false)
	test.Equate(t, lst.len(), 1)
}

func TestTrackedResolve(t *testing.T) {
	hst := newMockHost()
	lst := newTrackedList("$")

	lst.add(hst, "pc")
	lst.add(hst, "sp")

	// a register that disappears after being added resolves to the
	// failure sentinel without disturbing the others
	delete(hst.registers, "pc")

	values := lst.resolve(hst)
	test.Equate(t, len(values), 2)
	test.Equate(t, values[0].key, "pc")
	test.Equate(t, values[0].value, resolveFailure)
	test.Equate(t, values[1].key, "sp")
	test.Equate(t, values[1].value, "0x7ffffff0")
}

func TestTrackedVariables(t *testing.T) {
	hst := newMockHost()
	lst := newTrackedList("")

	// variables are resolved without the register sigil
	test.Equate(t, lst.add(hst, "counter"), true)
	test.Equate(t, lst.add(hst, "pc"), false)
}

func TestCommandList(t *testing.T) {
	lst := newCommandList()

	test.Equate(t, lst.add("info registers"), true)
	test.Equate(t, lst.add("info frame"), true)

	// identical command text is rejected. there is no other validation
	test.Equate(t, lst.add("info registers"), false)
	test.Equate(t, lst.add("not a real command"), true)
	test.Equate(t, lst.len(), 3)

	// removal is by index
	test.Equate(t, lst.remove(3), false)
	test.Equate(t, lst.remove(-1), false)
	test.Equate(t, lst.remove(1), true)
	test.Equate(t, lst.len(), 2)
	test.Equate(t, lst.commands[1], "not a real command")
}
