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

package demohost

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/debugdash/curated"
	"github.com/jetsetilly/debugdash/dashboard"
	"github.com/jetsetilly/debugdash/logger"
	"github.com/jetsetilly/debugdash/terminal"
)

// error patterns returned by the demo host.
const (
	NotARegister  = "no such register: %s"
	NotASymbol    = "no symbol %s in current context"
	NotReadable   = "cannot access memory at address 0x%08x"
	NotACommand   = "undefined command: %s"
	BadExpression = "cannot evaluate: %s"
)

const (
	memOrigin = 0x80000000
	memSize   = 0x10000
)

// the program the demo host pretends to be running. one machine instruction
// per source line.
const demoProgram = `int counter;

int main(void) {
	for (;;) {
		counter++;
		*(volatile int *)0x80008000 = counter;
	}
	return 0;
}
`

// registers of the demo machine, in the order a native debugger would list
// them.
var registerNames = []string{
	"pc", "ra", "sp", "gp", "tp",
	"t0", "t1", "t2",
	"a0", "a1", "a2", "a3",
}

// instructions reported by the disassembler. purely cosmetic.
var demoInstructions = []string{
	"lw	a0,0(gp)",
	"addi	a0,a0,1",
	"sw	a0,0(gp)",
	"lui	a1,0x80008",
	"sw	a0,0(a1)",
	"j	-20",
}

// DemoHost is a pretend native debugger attached to a pretend debuggee. it
// satisfies the dashboard Host interface and the console Stepper interface
// so the dashboard can be tried without a real process on the other end.
type DemoHost struct {
	trm terminal.Output

	registers map[string]uint64
	mem       []byte
	steps     int

	srcFilename string
}

// NewDemoHost is the preferred method of initialisation for the DemoHost
// type. a copy of the demo program source is written to the system
// temporary directory so the source block has a file to read.
func NewDemoHost(trm terminal.Output) (*DemoHost, error) {
	hst := &DemoHost{
		trm:       trm,
		registers: make(map[string]uint64),
		mem:       make([]byte, memSize),
	}

	for i, r := range registerNames {
		hst.registers[r] = uint64(i) * 0x10
	}
	hst.registers["pc"] = memOrigin
	hst.registers["sp"] = memOrigin + memSize - 16
	hst.registers["gp"] = memOrigin + 0x4000

	hst.srcFilename = filepath.Join(os.TempDir(), "debugdash_demo.c")
	if err := os.WriteFile(hst.srcFilename, []byte(demoProgram), 0600); err != nil {
		return nil, curated.Errorf("demohost: %v", err)
	}

	logger.Logf("demohost", "source written to %s", hst.srcFilename)

	return hst, nil
}

// Evaluate implements the dashboard Host interface.
func (hst *DemoHost) Evaluate(expression string) (string, error) {
	expression = strings.TrimSpace(expression)

	if strings.HasPrefix(expression, "$") {
		name := strings.TrimPrefix(expression, "$")
		v, ok := hst.registers[name]
		if !ok {
			return "", curated.Errorf(NotARegister, name)
		}
		return fmt.Sprintf("0x%x", v), nil
	}

	if strings.HasPrefix(expression, "*(unsigned char*)") {
		addr, err := parseNumber(strings.TrimPrefix(expression, "*(unsigned char*)"))
		if err != nil {
			return "", curated.Errorf(BadExpression, expression)
		}
		b, err := hst.peek(addr)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", b), nil
	}

	if expression == "counter" {
		return fmt.Sprintf("%d", hst.steps), nil
	}

	return "", curated.Errorf(NotASymbol, expression)
}

// SelectedThread implements the dashboard Host interface. the demo debuggee
// is single threaded.
func (hst *DemoHost) SelectedThread() (dashboard.Thread, error) {
	return dashboard.Thread{ID: 1}, nil
}

// CurrentFrame implements the dashboard Host interface.
func (hst *DemoHost) CurrentFrame() (dashboard.Frame, error) {
	return dashboard.Frame{
		PC: hst.registers["pc"],
		Source: &dashboard.SourceLocation{
			Filename: hst.srcFilename,
			Line:     5 + hst.steps%2,
		},
	}, nil
}

// ExecuteNative implements the dashboard Host interface. the demo host
// understands a small vocabulary of native commands.
func (hst *DemoHost) ExecuteNative(command string, capture bool) (string, error) {
	command = strings.TrimSpace(command)

	var out strings.Builder

	switch {
	case strings.HasPrefix(command, "x/4wx "):
		addr, err := parseNumber(strings.TrimPrefix(command, "x/4wx "))
		if err != nil {
			return "", curated.Errorf(BadExpression, command)
		}

		words := make([]string, 0, 4)
		for i := uint64(0); i < 4; i++ {
			w, err := hst.peekWord(addr + i*4)
			if err != nil {
				return "", err
			}
			words = append(words, fmt.Sprintf("0x%08x", w))
		}
		out.WriteString(fmt.Sprintf("0x%08x:\t%s\n", addr, strings.Join(words, "\t")))

	case strings.HasPrefix(command, "print "):
		v, err := hst.Evaluate(strings.TrimPrefix(command, "print "))
		if err != nil {
			return "", err
		}
		out.WriteString(fmt.Sprintf("$1 = %s\n", v))

	case command == "info registers":
		for _, r := range registerNames {
			out.WriteString(fmt.Sprintf("%-8s0x%-16x%d\n", r, hst.registers[r], hst.registers[r]))
		}

	default:
		return "", curated.Errorf(NotACommand, command)
	}

	if capture {
		return out.String(), nil
	}

	hst.write(out.String())

	return "", nil
}

// Disassemble implements the dashboard Host interface. instructions are
// cosmetic but the addresses are real and the program counter is marked.
func (hst *DemoHost) Disassemble(start uint64, count int) error {
	pc := hst.registers["pc"]

	for i := 0; i < count; i++ {
		addr := start + uint64(i*4)
		if _, err := hst.peekWord(addr); err != nil {
			return err
		}

		mark := "  "
		if addr == pc {
			mark = "=>"
		}

		asm := demoInstructions[(addr/4)%uint64(len(demoInstructions))]
		hst.write(fmt.Sprintf("%s 0x%08x:\t%s\n", mark, addr, asm))
	}

	return nil
}

// Unwind implements the dashboard Host interface.
func (hst *DemoHost) Unwind(maxFrames int) error {
	frames := []string{
		fmt.Sprintf("#0  0x%08x in main ()", hst.registers["pc"]),
		fmt.Sprintf("#1  0x%08x in _start ()", uint64(memOrigin)),
	}
	if maxFrames < len(frames) {
		frames = frames[:maxFrames]
	}
	for _, f := range frames {
		hst.write(f + "\n")
	}
	return nil
}

// Step advances the demo debuggee by one instruction: the program counter
// moves on, the loop counter ticks over and the store to 0x80008000 lands.
func (hst *DemoHost) Step() error {
	hst.steps++

	pc := hst.registers["pc"] + 4
	if pc >= memOrigin+0x100 {
		pc = memOrigin
	}
	hst.registers["pc"] = pc
	hst.registers["a0"] = uint64(hst.steps)

	addr := uint64(0x80008000) - memOrigin
	v := uint32(hst.steps)
	hst.mem[addr] = byte(v)
	hst.mem[addr+1] = byte(v >> 8)
	hst.mem[addr+2] = byte(v >> 16)
	hst.mem[addr+3] = byte(v >> 24)

	return nil
}

func (hst *DemoHost) peek(addr uint64) (byte, error) {
	if addr < memOrigin || addr >= memOrigin+memSize {
		return 0, curated.Errorf(NotReadable, addr)
	}
	return hst.mem[addr-memOrigin], nil
}

func (hst *DemoHost) peekWord(addr uint64) (uint32, error) {
	var w uint32
	for i := uint64(0); i < 4; i++ {
		b, err := hst.peek(addr + i)
		if err != nil {
			return 0, err
		}
		w |= uint32(b) << (8 * i)
	}
	return w, nil
}

// write sends non-captured command output to the terminal. host output is
// printed verbatim, the host's own formatting is preserved.
func (hst *DemoHost) write(s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		hst.trm.TermPrintLine(terminal.StyleHostOutput, l)
	}
}

// parseNumber converts native command arguments. hexadecimal values must be
// prefixed with "0x"; anything else is treated as decimal.
func parseNumber(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}
