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
	"strconv"
	"strings"

	"github.com/jetsetilly/debugdash/curated"
	"github.com/jetsetilly/debugdash/terminal"
)

// mockHost is a canned Host for testing. registers and variables resolve
// from fixed maps and memory reads succeed inside a single readable range.
type mockHost struct {
	registers map[string]string
	variables map[string]string

	// readable memory. when readTo is zero all probes fail
	readFrom uint64
	readTo   uint64

	thread Thread
	frame  Frame

	// every command given to ExecuteNative, Disassemble and Unwind
	executed []string

	// commands that return an error from ExecuteNative
	failing map[string]bool
}

func newMockHost() *mockHost {
	return &mockHost{
		registers: map[string]string{
			"pc": "0x80000040",
			"sp": "0x7ffffff0",
			"ra": "0x80000010",
		},
		variables: map[string]string{
			"counter": "99",
		},
		readFrom: 0x80000000,
		readTo:   0x80010000,
		thread:   Thread{ID: 1},
		frame:    Frame{PC: 0x80000040},
		failing:  make(map[string]bool),
	}
}

func (hst *mockHost) Evaluate(expression string) (string, error) {
	if strings.HasPrefix(expression, "$") {
		s := strings.TrimPrefix(expression, "$")
		if v, ok := hst.registers[s]; ok {
			return v, nil
		}
		return "", curated.Errorf("no such register: %s", s)
	}

	if strings.HasPrefix(expression, "*(unsigned char*)") {
		s := strings.TrimPrefix(expression, "*(unsigned char*)")
		addr, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
		if err != nil {
			return "", err
		}
		if addr >= hst.readFrom && addr < hst.readTo {
			return "0", nil
		}
		return "", curated.Errorf("cannot access memory at 0x%08x", addr)
	}

	if v, ok := hst.variables[expression]; ok {
		return v, nil
	}

	return "", curated.Errorf("no symbol: %s", expression)
}

func (hst *mockHost) SelectedThread() (Thread, error) {
	return hst.thread, nil
}

func (hst *mockHost) CurrentFrame() (Frame, error) {
	return hst.frame, nil
}

func (hst *mockHost) ExecuteNative(command string, capture bool) (string, error) {
	hst.executed = append(hst.executed, command)
	if hst.failing[command] {
		return "", curated.Errorf("cannot execute: %s", command)
	}
	return "", nil
}

func (hst *mockHost) Disassemble(start uint64, count int) error {
	hst.executed = append(hst.executed, fmt.Sprintf("disassemble %#x %d", start, count))
	return nil
}

func (hst *mockHost) Unwind(maxFrames int) error {
	hst.executed = append(hst.executed, fmt.Sprintf("unwind %d", maxFrames))
	return nil
}

// mockTerm records every line printed to it.
type mockTerm struct {
	lines []string
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	trm.lines = append(trm.lines, s)
}

func (trm *mockTerm) TermWidth() int {
	return 80
}

func (trm *mockTerm) SupportsStyle() bool {
	return false
}

// contains is true if any recorded line contains the substring.
func (trm *mockTerm) contains(sub string) bool {
	for _, l := range trm.lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}
