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

func TestDefaultSettings(t *testing.T) {
	st := newSettings()

	// only the thread block is visible by default
	vis := st.orderedVisible()
	test.Equate(t, len(vis), 1)
	test.Equate(t, vis[0] == BlockThread, true)

	test.Equate(t, st.orderString(),
		"thread -> backtrace -> memory -> source -> assembly -> registers -> variables -> commands")

	test.Equate(t, st.statusString(),
		"Thread ID: on | Registers: off | Backtrace: off | Assembly: off | Source: off | Variables: off | Memory: off | Commands: off")
}

func TestToggle(t *testing.T) {
	st := newSettings()

	st.toggle(BlockRegisters)
	test.Equate(t, st.visible[BlockRegisters], true)
	st.toggle(BlockRegisters)
	test.Equate(t, st.visible[BlockRegisters], false)

	st.toggle(BlockThread)
	test.Equate(t, st.visible[BlockThread], false)
}

func TestSetList(t *testing.T) {
	st := newSettings()

	applied := st.setList("registers,memory", true)
	test.Equate(t, len(applied), 2)

	// the visible blocks follow the default order, not the order they
	// were enabled in
	vis := st.orderedVisible()
	test.Equate(t, len(vis), 3)
	test.Equate(t, vis[0] == BlockThread, true)
	test.Equate(t, vis[1] == BlockMemory, true)
	test.Equate(t, vis[2] == BlockRegisters, true)

	// unknown names are skipped but the rest of the list still applies
	applied = st.setList("nonsuch,source", true)
	test.Equate(t, len(applied), 1)
	test.Equate(t, applied[0], "source")
	test.Equate(t, st.visible[BlockSource], true)
}

func TestReorder(t *testing.T) {
	st := newSettings()

	err := st.reorder("commands,variables,registers,assembly,source,memory,backtrace,thread")
	test.ExpectedSuccess(t, err)
	test.Equate(t, st.orderString(),
		"commands -> variables -> registers -> assembly -> source -> memory -> backtrace -> thread")
}

func TestReorderRejection(t *testing.T) {
	st := newSettings()
	before := st.orderString()

	// too few names
	err := st.reorder("thread,backtrace")
	test.ExpectedFailure(t, err)
	test.Equate(t, st.orderString(), before)

	// unknown name
	err = st.reorder("thread,backtrace,memory,source,assembly,registers,variables,nonsuch")
	test.ExpectedFailure(t, err)
	test.Equate(t, st.orderString(), before)

	// duplicate name. the count is right but it is not a permutation
	err = st.reorder("thread,thread,memory,source,assembly,registers,variables,commands")
	test.ExpectedFailure(t, err)
	test.Equate(t, st.orderString(), before)
}

func TestReorderAffectsDisplay(t *testing.T) {
	st := newSettings()
	st.setList("registers,memory", true)

	err := st.reorder("registers,memory,thread,backtrace,source,assembly,variables,commands")
	test.ExpectedSuccess(t, err)

	vis := st.orderedVisible()
	test.Equate(t, len(vis), 3)
	test.Equate(t, vis[0] == BlockRegisters, true)
	test.Equate(t, vis[1] == BlockMemory, true)
	test.Equate(t, vis[2] == BlockThread, true)
}
