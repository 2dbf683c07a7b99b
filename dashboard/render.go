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
	"strings"

	"github.com/jetsetilly/debugdash/curated"
)

// sentinel error returned by OnStop when a tracked command fails.
const CommandFailure = "tracked command #%d: %v"

func (dsh *Dashboard) renderThread() {
	thd, err := dsh.hst.SelectedThread()
	if err != nil {
		dsh.printError("cannot read thread information: %s", err)
		return
	}
	dsh.print("%s%s", dsh.styl.heading("Thread ID: "), dsh.styl.info(fmt.Sprintf("%d", thd.ID)))
}

func (dsh *Dashboard) renderBacktrace() {
	dsh.print("")
	dsh.print(dsh.styl.heading("Backtrace:"))
	dsh.rule()

	// the host prints frames in its own format
	if err := dsh.hst.Unwind(10); err != nil {
		dsh.printError("cannot read backtrace: %s", err)
	}
}

func (dsh *Dashboard) renderSource() {
	frm, err := dsh.hst.CurrentFrame()
	if err != nil {
		dsh.printError("cannot read source code: %s", err)
		return
	}

	if frm.Source == nil {
		dsh.printError("no source information available")
		return
	}

	dsh.print("")
	dsh.print(dsh.styl.heading("Source Code:"))
	dsh.rule()

	window, err := dsh.src.window(frm.Source.Filename, frm.Source.Line)
	if err != nil {
		dsh.printError("cannot read source code: %s", err)
		return
	}

	for _, ln := range window {
		if ln.current {
			dsh.print(dsh.styl.highlight(fmt.Sprintf("%4d => %s", ln.number, ln.content)))
		} else {
			dsh.print("%4d    %s", ln.number, ln.content)
		}
	}
}

func (dsh *Dashboard) renderAssembly() {
	frm, err := dsh.hst.CurrentFrame()
	if err != nil {
		dsh.printError("cannot read assembly code: %s", err)
		return
	}

	dsh.print("")
	dsh.print(dsh.styl.heading("Assembly Code:"))
	dsh.rule()

	// a fixed instruction width. the window is approximate on hosts with
	// variable length instructions
	start := frm.PC - uint64(dsh.asmBefore*4)
	count := dsh.asmBefore + dsh.asmAfter + 1

	if err := dsh.hst.Disassemble(start, count); err != nil {
		dsh.printError("cannot read assembly code: %s", err)
	}
}

func (dsh *Dashboard) renderRegisters() {
	dsh.print("")
	dsh.print(dsh.styl.heading("Registers:"))

	perLine := dsh.trm.TermWidth() / 30
	if perLine < 1 {
		perLine = 1
	}

	line := make([]string, 0, perLine)
	for _, kv := range dsh.registers.resolve(dsh.hst) {
		// pad widths account for the unstyled text, not the pen sequences
		line = append(line, fmt.Sprintf("%s%s = %s%s",
			dsh.styl.info(kv.key), pad(8-len(kv.key)),
			dsh.styl.value(kv.value), pad(12-len(kv.value))))

		if len(line) >= perLine {
			dsh.print(strings.Join(line, " | "))
			line = line[:0]
		}
	}

	if len(line) > 0 {
		dsh.print(strings.Join(line, " | "))
	}
}

func (dsh *Dashboard) renderVariables() {
	if dsh.variables.len() == 0 {
		return
	}

	dsh.print("")
	dsh.print(dsh.styl.heading("Variables:"))
	dsh.rule()

	for _, k := range dsh.variables.keys {
		dsh.print("%s%s:", dsh.styl.heading("Variable "), dsh.styl.ref(k))

		// the host prints the value in its own format
		if _, err := dsh.hst.ExecuteNative("print "+k, false); err != nil {
			dsh.printError("cannot read variable %s: %s", k, err)
		}
	}
}

func (dsh *Dashboard) renderMemory() {
	if dsh.memory.len() == 0 {
		return
	}

	dsh.print("")
	dsh.print(dsh.styl.heading("Memory Blocks:"))
	dsh.rule()

	for _, blk := range dsh.memory.blocks {
		dsh.print("%s%s:", dsh.styl.heading("Memory Block at "), dsh.styl.ref(fmt.Sprintf("0x%08x", blk.start)))

		// four words (16 bytes) per line. the display address advances
		// by a full line even when fewer bytes remain, so the final
		// line of a block whose size is not a multiple of 16 shows
		// bytes past the end of the block
		words := blk.size / 4
		lines := (words + 3) / 4

		for i := uint64(0); i < lines; i++ {
			addr := blk.start + (i * 16)
			if addr < blk.end {
				if _, err := dsh.hst.ExecuteNative(fmt.Sprintf("x/4wx %d", addr), false); err != nil {
					dsh.printError("cannot read memory at 0x%08x: %s", addr, err)
					break
				}
			}
		}

		dsh.rule()
	}
}

// renderCommands executes every tracked command through the host. unlike
// the other renderers a failure here is returned to the caller. tracked
// commands are arbitrary and a failing one is a problem the user needs to
// see in full.
func (dsh *Dashboard) renderCommands() error {
	if dsh.commands.len() == 0 {
		return nil
	}

	dsh.print("")
	dsh.print(dsh.styl.heading("Custom Commands:"))
	dsh.rule()

	for i, cmd := range dsh.commands.commands {
		dsh.print("%s%s:", dsh.styl.heading("Command "), dsh.styl.ref(fmt.Sprintf("#%d", i)))

		if _, err := dsh.hst.ExecuteNative(cmd, false); err != nil {
			return curated.Errorf(CommandFailure, i, err)
		}
	}

	return nil
}
