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
	"github.com/jetsetilly/debugdash/commandline"
)

// the names of the commands accepted by ParseInput.
const (
	cmdClear      = "CLEAR"
	cmdCommand    = "COMMAND"
	cmdDisable    = "DISABLE"
	cmdEnable     = "ENABLE"
	cmdHelp       = "HELP"
	cmdLog        = "LOG"
	cmdMemory     = "MEMORY"
	cmdOrder      = "ORDER"
	cmdRegister   = "REGISTER"
	cmdShow       = "SHOW"
	cmdSourceLine = "SOURCELINE"
	cmdState      = "STATE"
	cmdToggle     = "TOGGLE"
	cmdVariable   = "VARIABLE"
)

// sub-keywords shared by several commands.
const (
	keywordAdd   = "ADD"
	keywordDrop  = "DROP"
	keywordClear = "CLEAR"
)

// blockKeywords is the list of block names accepted by the TOGGLE command,
// uppercased the way the validator expects.
var blockKeywords = []string{
	"THREAD", "BACKTRACE", "MEMORY", "SOURCE",
	"ASSEMBLY", "REGISTERS", "VARIABLES", "COMMANDS",
}

// DashboardCommands defines the command vocabulary understood by
// ParseInput. exported so a surrounding console can merge it with its own
// vocabulary for validation and tab completion.
var DashboardCommands = commandline.Commands{
	cmdClear: {},
	cmdCommand: {
		{Typ: commandline.ArgKeyword, Req: true, Vals: []string{keywordAdd, keywordDrop}},
		{Typ: commandline.ArgString, Req: true},
		{Typ: commandline.ArgIndeterminate},
	},
	cmdDisable: {
		{Typ: commandline.ArgString, Req: true},
	},
	cmdEnable: {
		{Typ: commandline.ArgString, Req: true},
	},
	cmdHelp: {
		{Typ: commandline.ArgString},
	},
	cmdLog: {
		{Typ: commandline.ArgKeyword, Vals: []string{keywordClear}},
	},
	cmdMemory: {
		{Typ: commandline.ArgKeyword, Req: true, Vals: []string{keywordAdd, keywordDrop}},
		{Typ: commandline.ArgAddress, Req: true},
		{Typ: commandline.ArgAddress},
	},
	cmdOrder: {
		{Typ: commandline.ArgString, Req: true},
	},
	cmdRegister: {
		{Typ: commandline.ArgKeyword, Req: true, Vals: []string{keywordAdd, keywordDrop}},
		{Typ: commandline.ArgString, Req: true},
		{Typ: commandline.ArgIndeterminate},
	},
	cmdShow: {
		{Typ: commandline.ArgKeyword, Vals: []string{keywordClear}},
	},
	cmdSourceLine: {
		{Typ: commandline.ArgValue, Req: true},
		{Typ: commandline.ArgValue, Req: true},
	},
	cmdState: {
		{Typ: commandline.ArgString, Req: true},
	},
	cmdToggle: {
		{Typ: commandline.ArgKeyword, Req: true, Vals: blockKeywords},
	},
	cmdVariable: {
		{Typ: commandline.ArgKeyword, Req: true, Vals: []string{keywordAdd, keywordDrop}},
		{Typ: commandline.ArgString, Req: true},
		{Typ: commandline.ArgIndeterminate},
	},
}

// Help contains the help text for all dashboard commands.
var Help = map[string]string{
	cmdClear:      "Clear the terminal screen",
	cmdCommand:    "Add or drop a tracked host command (drop by index)",
	cmdDisable:    "Hide the listed blocks (comma separated, also SETTINGS and ORDER)",
	cmdEnable:     "Show the listed blocks (comma separated, also SETTINGS and ORDER)",
	cmdHelp:       "Lists commands and provides help for individual commands",
	cmdLog:        "Display the last few log entries (or clear the log)",
	cmdMemory:     "Add or drop a watched memory block (address and size in bytes)",
	cmdOrder:      "Change the block display order (comma separated, all blocks)",
	cmdRegister:   "Add or drop tracked registers",
	cmdShow:       "Render the dashboard now (CLEAR to clear the screen first)",
	cmdSourceLine: "Set the source context window (lines before as a negative number, lines after)",
	cmdState:      "Write a graph of the dashboard state to a file",
	cmdToggle:     "Flip the visibility of a block",
	cmdVariable:   "Add or drop tracked variables",
}
