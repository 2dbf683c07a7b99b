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

func TestMemoryAdd(t *testing.T) {
	hst := newMockHost()
	lst := newMemoryList()

	test.Equate(t, lst.add(hst, 0x80000000, 16), true)
	test.Equate(t, lst.len(), 1)

	// zero sized blocks are meaningless
	test.Equate(t, lst.add(hst, 0x80000100, 0), false)

	// unreadable memory is rejected. the first probe fails
	test.Equate(t, lst.add(hst, 0x1000, 16), false)

	// a block whose start is readable but whose end is not
	test.Equate(t, lst.add(hst, 0x8000fff0, 64), false)

	test.Equate(t, lst.len(), 1)
}

func TestMemoryOverlap(t *testing.T) {
	hst := newMockHost()
	hst.readFrom = 0x7fff0000
	lst := newMemoryList()

	test.Equate(t, lst.add(hst, 0x80000000, 16), true)

	// inside the existing block
	test.Equate(t, lst.add(hst, 0x80000004, 4), false)

	// straddling the start of the existing block
	test.Equate(t, lst.add(hst, 0x7ffffff8, 16), false)

	// touching the end of the existing block. the end comparison is
	// inclusive so this is rejected too
	test.Equate(t, lst.add(hst, 0x80000010, 16), false)

	// one byte clear of the end
	test.Equate(t, lst.add(hst, 0x80000011, 16), true)

	test.Equate(t, lst.len(), 2)
}

func TestMemoryRemove(t *testing.T) {
	hst := newMockHost()
	lst := newMemoryList()

	lst.add(hst, 0x80000000, 16)

	// only the exact start address identifies a block
	test.Equate(t, lst.remove(0x80000004), false)
	test.Equate(t, lst.remove(0x80000000), true)
	test.Equate(t, lst.remove(0x80000000), false)
	test.Equate(t, lst.len(), 0)
}
