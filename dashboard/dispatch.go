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

	"github.com/jetsetilly/debugdash/commandline"
	"github.com/jetsetilly/debugdash/curated"
	"github.com/jetsetilly/debugdash/logger"
	"github.com/jetsetilly/debugdash/terminal"
	"github.com/jetsetilly/debugdash/terminal/colorterm/easyterm/ansi"
)

// error patterns returned by ParseInput.
const (
	invalidItemList = "no recognised display items in: %s"
	commandNotFound = "command #%d not found in display list"
	commandRejected = "command already in display list"
	blockNotFound   = "no memory block found at 0x%08x"
	blockRejected   = "failed to add memory block at 0x%08x"
	noHelp          = "no help for %s"
)

// number of log entries shown by the LOG command.
const logTail = 10

// the presentation names used when telling the user about a visibility
// change. these differ from the canonical block names.
var displayNames = map[Block]string{
	BlockThread:    "Thread ID",
	BlockBacktrace: "Backtrace",
	BlockMemory:    "Memory",
	BlockSource:    "Source",
	BlockAssembly:  "Assembly",
	BlockRegisters: "Register",
	BlockVariables: "Variable",
	BlockCommands:  "Custom commands",
}

func (dsh *Dashboard) feedback(s string, a ...interface{}) {
	dsh.trm.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf(s, a...))
}

// ParseInput tokenises and validates a single line of user input and
// dispatches it to the dashboard. feedback for successful commands is
// printed to the dashboard's terminal; failures are returned as errors for
// the caller to report.
func (dsh *Dashboard) ParseInput(input string) error {
	tokens := commandline.TokeniseInput(input)

	if err := DashboardCommands.ValidateTokens(tokens); err != nil {
		return err
	}

	return dsh.processTokens(tokens)
}

func (dsh *Dashboard) processTokens(tokens *commandline.Tokens) error {
	command, _ := tokens.Get()

	switch strings.ToUpper(command) {
	case cmdHelp:
		dsh.processHelp(tokens)

	case cmdClear:
		dsh.clearScreen()

	case cmdShow:
		if arg, ok := tokens.Get(); ok && strings.ToUpper(arg) == keywordClear {
			dsh.clearScreen()
		}
		return dsh.OnStop()

	case cmdToggle:
		arg, _ := tokens.Get()
		blk, _ := blockByName(arg)
		dsh.set.toggle(blk)
		if dsh.set.visible[blk] {
			dsh.feedback("%s display enabled", displayNames[blk])
		} else {
			dsh.feedback("%s display disabled", displayNames[blk])
		}

	case cmdEnable:
		list, _ := tokens.Get()
		return dsh.setItems(list, true)

	case cmdDisable:
		list, _ := tokens.Get()
		return dsh.setItems(list, false)

	case cmdOrder:
		list, _ := tokens.Get()
		if err := dsh.set.reorder(list); err != nil {
			return err
		}
		dsh.feedback("Display order updated successfully")
		dsh.feedback("New order: %s", dsh.set.orderString())

	case cmdRegister:
		return dsh.processTracked(tokens, dsh.registers, BlockRegisters, "register")

	case cmdVariable:
		return dsh.processTracked(tokens, dsh.variables, BlockVariables, "variable")

	case cmdMemory:
		return dsh.processMemory(tokens)

	case cmdCommand:
		return dsh.processCommand(tokens)

	case cmdSourceLine:
		arg, _ := tokens.Get()
		before, _ := strconv.Atoi(arg)
		arg, _ = tokens.Get()
		after, _ := strconv.Atoi(arg)

		// the first argument is the offset of the top of the window
		// from the current line, so is normally given as a negative
		// number
		dsh.src.linesBefore = -before
		dsh.src.linesAfter = after

	case cmdState:
		filename, _ := tokens.Get()
		if err := dsh.writeState(filename); err != nil {
			return err
		}
		dsh.feedback("Dashboard state written to %s", filename)

	case cmdLog:
		if arg, ok := tokens.Get(); ok && strings.ToUpper(arg) == keywordClear {
			logger.Clear()
			return nil
		}
		s := &strings.Builder{}
		logger.Tail(s, logTail)
		for _, ln := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
			if ln != "" {
				dsh.trm.TermPrintLine(terminal.StyleLog, ln)
			}
		}
	}

	return nil
}

// setItems services the ENABLE and DISABLE commands. the list can name
// blocks and also the two banner items, "settings" and "order".
func (dsh *Dashboard) setItems(list string, visible bool) error {
	applied := make([]string, 0, numBlocks+2)
	blocks := make([]string, 0, numBlocks)

	for _, name := range strings.Split(list, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "settings":
			dsh.set.showSettings = visible
			applied = append(applied, "settings")
		case "order":
			dsh.set.showOrder = visible
			applied = append(applied, "order")
		default:
			blocks = append(blocks, name)
		}
	}

	applied = append(applied, dsh.set.setList(strings.Join(blocks, ","), visible)...)

	if len(applied) == 0 {
		return curated.Errorf(invalidItemList, list)
	}

	dsh.feedback("Display settings updated: %s", strings.Join(applied, ", "))

	return nil
}

// processTracked services the REGISTER and VARIABLE commands. both look the
// same, differing only in the registry being changed and the block whose
// visibility follows the registry's contents.
func (dsh *Dashboard) processTracked(tokens *commandline.Tokens, lst *trackedList, blk Block, noun string) error {
	mode, _ := tokens.Get()

	var succeeded int
	var failed []string
	var err error

	switch strings.ToUpper(mode) {
	case keywordAdd:
		for name, ok := tokens.Get(); ok; name, ok = tokens.Get() {
			if lst.add(dsh.hst, name) {
				succeeded++
			} else {
				failed = append(failed, name)
			}
		}
		if succeeded > 0 {
			dsh.feedback("Added %d %s(s) to display list", succeeded, noun)
		}
		if len(failed) > 0 {
			err = curated.Errorf("failed to add %s(s): %s", noun, strings.Join(failed, " "))
		}

	case keywordDrop:
		for name, ok := tokens.Get(); ok; name, ok = tokens.Get() {
			if lst.remove(name) {
				succeeded++
			} else {
				failed = append(failed, name)
			}
		}
		if succeeded > 0 {
			dsh.feedback("Removed %d %s(s) from display list", succeeded, noun)
		}
		if len(failed) > 0 {
			err = curated.Errorf("failed to remove %s(s): %s", noun, strings.Join(failed, " "))
		}
	}

	// visibility follows contents, even when some of the names failed. an
	// emptied registry would render as a bare header
	dsh.set.set(blk, lst.len() > 0)

	return err
}

func (dsh *Dashboard) processMemory(tokens *commandline.Tokens) error {
	mode, _ := tokens.Get()

	arg, _ := tokens.Get()
	addr, err := commandline.ParseAddress(arg)
	if err != nil {
		return err
	}

	switch strings.ToUpper(mode) {
	case keywordAdd:
		arg, ok := tokens.Get()
		if !ok {
			return curated.Errorf(commandline.TooFewArgs, "size", cmdMemory)
		}
		size, err := commandline.ParseAddress(arg)
		if err != nil {
			return err
		}

		if !dsh.memory.add(dsh.hst, addr, size) {
			return curated.Errorf(blockRejected, addr)
		}

		dsh.set.set(BlockMemory, true)
		dsh.feedback("Added memory block at 0x%08x with size %d", addr, size)

	case keywordDrop:
		if !dsh.memory.remove(addr) {
			return curated.Errorf(blockNotFound, addr)
		}
		dsh.feedback("Removed memory block at 0x%08x", addr)
	}

	return nil
}

func (dsh *Dashboard) processCommand(tokens *commandline.Tokens) error {
	mode, _ := tokens.Get()

	switch strings.ToUpper(mode) {
	case keywordAdd:
		command := tokens.Remainder()
		if !dsh.commands.add(command) {
			return curated.Errorf(commandRejected)
		}

		dsh.set.set(BlockCommands, true)
		dsh.feedback("Added command #%d to display list", dsh.commands.len()-1)

	case keywordDrop:
		arg, _ := tokens.Get()
		index, err := strconv.Atoi(arg)
		if err != nil {
			return curated.Errorf(commandline.InvalidArg, arg, "index", cmdCommand)
		}

		if !dsh.commands.remove(index) {
			return curated.Errorf(commandNotFound, index)
		}
		dsh.feedback("Removed command #%d from display list", index)
	}

	return nil
}

func (dsh *Dashboard) processHelp(tokens *commandline.Tokens) {
	if arg, ok := tokens.Get(); ok {
		arg = strings.ToUpper(arg)
		if txt, ok := Help[arg]; ok {
			dsh.trm.TermPrintLine(terminal.StyleHelp, txt)
		} else {
			dsh.trm.TermPrintLine(terminal.StyleHelp, fmt.Sprintf(noHelp, arg))
		}
		return
	}

	for _, cmd := range DashboardCommands.List() {
		dsh.trm.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("%-12s %s", cmd, Help[cmd]))
	}
	dsh.trm.TermPrintLine(terminal.StyleHelp, "")
	dsh.trm.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("Display Settings: %s", dsh.set.statusString()))
	dsh.trm.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("Display Order: %s", dsh.set.orderString()))
}

// clearScreen clears the terminal if it is capable of it.
func (dsh *Dashboard) clearScreen() {
	if dsh.trm.SupportsStyle() {
		dsh.trm.TermPrintLine(terminal.StyleDashboard, ansi.ClearScreen)
	}
}
