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
	"strings"
	"testing"

	"github.com/jetsetilly/debugdash/curated"
	"github.com/jetsetilly/debugdash/test"
)

func newTestDashboard(t *testing.T) (*Dashboard, *mockHost, *mockTerm) {
	t.Helper()
	hst := newMockHost()
	trm := &mockTerm{}
	return NewDashboard(hst, trm), hst, trm
}

// memoryReads counts the hex-dump commands the host was given.
func memoryReads(hst *mockHost) []string {
	reads := make([]string, 0)
	for _, c := range hst.executed {
		if strings.HasPrefix(c, "x/4wx ") {
			reads = append(reads, c)
		}
	}
	return reads
}

func TestRenderDefaults(t *testing.T) {
	dsh, _, trm := newTestDashboard(t)

	err := dsh.OnStop()
	test.ExpectedSuccess(t, err)

	// only the thread block, followed by a rule
	test.Equate(t, len(trm.lines), 2)
	test.Equate(t, trm.lines[0], "Thread ID: 1")
	test.Equate(t, trm.lines[1], strings.Repeat("-", 80))
}

func TestRenderBanners(t *testing.T) {
	dsh, _, trm := newTestDashboard(t)

	err := dsh.ParseInput("ENABLE settings,order")
	test.ExpectedSuccess(t, err)

	trm.lines = nil
	err = dsh.OnStop()
	test.ExpectedSuccess(t, err)

	test.Equate(t, strings.HasPrefix(trm.lines[0], "Display Settings: Thread ID: on"), true)
	test.Equate(t, strings.HasPrefix(trm.lines[1], "Display Order: thread -> "), true)
	test.Equate(t, trm.lines[2], strings.Repeat("-", 80))
}

func TestRenderMemoryExact(t *testing.T) {
	dsh, hst, _ := newTestDashboard(t)

	// a block of exactly one display line
	err := dsh.ParseInput("MEMORY ADD 0x80000000 16")
	test.ExpectedSuccess(t, err)

	hst.executed = nil
	err = dsh.OnStop()
	test.ExpectedSuccess(t, err)

	reads := memoryReads(hst)
	test.Equate(t, len(reads), 1)
	test.Equate(t, reads[0], "x/4wx 2147483648")
}

func TestRenderMemoryOverRead(t *testing.T) {
	dsh, hst, _ := newTestDashboard(t)

	// twenty bytes is one full line plus one word. the display still
	// advances a full sixteen bytes so the second read covers addresses
	// past the end of the block
	err := dsh.ParseInput("MEMORY ADD 0x80000000 20")
	test.ExpectedSuccess(t, err)

	hst.executed = nil
	err = dsh.OnStop()
	test.ExpectedSuccess(t, err)

	reads := memoryReads(hst)
	test.Equate(t, len(reads), 2)
	test.Equate(t, reads[0], "x/4wx 2147483648")
	test.Equate(t, reads[1], "x/4wx 2147483664")
}

func TestRenderRegisters(t *testing.T) {
	dsh, _, trm := newTestDashboard(t)

	err := dsh.ParseInput("REGISTER ADD pc sp ra")
	test.ExpectedSuccess(t, err)

	trm.lines = nil
	err = dsh.OnStop()
	test.ExpectedSuccess(t, err)

	// the 80 column terminal fits two registers per line
	test.Equate(t, trm.contains("pc       = 0x80000040   | sp       = 0x7ffffff0  "), true)
	test.Equate(t, trm.contains("ra       = 0x80000010  "), true)
}

func TestRenderCommandFailure(t *testing.T) {
	dsh, hst, _ := newTestDashboard(t)

	err := dsh.ParseInput("COMMAND ADD info registers")
	test.ExpectedSuccess(t, err)
	err = dsh.ParseInput("COMMAND ADD info frame")
	test.ExpectedSuccess(t, err)

	hst.failing["info registers"] = true

	// a failing tracked command aborts the stop handler
	err = dsh.OnStop()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, CommandFailure), true)

	// the second command was never reached
	for _, c := range hst.executed {
		test.Equate(t, c == "info frame", false)
	}
}

func TestRenderOrder(t *testing.T) {
	dsh, hst, _ := newTestDashboard(t)

	err := dsh.ParseInput("ENABLE backtrace,assembly")
	test.ExpectedSuccess(t, err)

	hst.executed = nil
	err = dsh.OnStop()
	test.ExpectedSuccess(t, err)

	// backtrace ranks before assembly by default
	test.Equate(t, len(hst.executed), 2)
	test.Equate(t, hst.executed[0], "unwind 10")
	test.Equate(t, hst.executed[1], "disassemble 0x8000002c 16")

	err = dsh.ParseInput("ORDER assembly,backtrace,thread,memory,source,registers,variables,commands")
	test.ExpectedSuccess(t, err)

	hst.executed = nil
	err = dsh.OnStop()
	test.ExpectedSuccess(t, err)

	test.Equate(t, hst.executed[0], "disassemble 0x8000002c 16")
	test.Equate(t, hst.executed[1], "unwind 10")
}
