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

package console

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/debugdash/commandline"
	"github.com/jetsetilly/debugdash/curated"
	"github.com/jetsetilly/debugdash/dashboard"
	"github.com/jetsetilly/debugdash/terminal"
)

// the commands the console adds to the dashboard's vocabulary.
const (
	cmdQuit = "QUIT"
	cmdStep = "STEP"
)

var consoleHelp = map[string]string{
	cmdQuit: "Leave the console",
	cmdStep: "Advance the debuggee to the next stop",
}

// Stepper is how the console advances the debuggee. a Step returns once the
// debuggee has stopped again.
type Stepper interface {
	Step() error
}

// Console is an interactive loop around a dashboard: it reads a line from
// the terminal, dispatches it and renders the dashboard whenever the
// debuggee stops.
type Console struct {
	dsh *dashboard.Dashboard
	stp Stepper
	trm terminal.Terminal

	// the dashboard's vocabulary plus the console's own commands. used for
	// validation and tab completion
	commands commandline.Commands

	events *terminal.ReadEvents
}

// NewConsole is the preferred method of initialisation for the Console
// type. the terminal should have been initialised already.
func NewConsole(hst dashboard.Host, stp Stepper, trm terminal.Terminal) *Console {
	con := &Console{
		dsh: dashboard.NewDashboard(hst, trm),
		stp: stp,
		trm: trm,
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}

	con.commands = make(commandline.Commands)
	for k, v := range dashboard.DashboardCommands {
		con.commands[k] = v
	}
	con.commands[cmdQuit] = commandline.CommandArgs{}
	con.commands[cmdStep] = commandline.CommandArgs{}

	trm.RegisterTabCompletion(commandline.NewTabCompletion(con.commands))

	return con
}

// Run the console until the user quits or input is exhausted.
func (con *Console) Run() error {
	signal.Notify(con.events.IntEvents, os.Interrupt)
	defer signal.Stop(con.events.IntEvents)

	// render once on entry so the user sees the initial stop
	if err := con.dsh.OnStop(); err != nil {
		con.printError(err)
	}

	buffer := make([]byte, 255)

	for {
		n, err := con.trm.TermRead(buffer, terminal.Prompt{Content: "dbdash"}, con.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				con.trm.TermPrintLine(terminal.StyleFeedback, "quitting")
				return nil
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		if n < 1 {
			continue
		}

		input := strings.TrimSpace(string(buffer[:n-1]))
		if input == "" {
			continue
		}

		tokens := commandline.TokeniseInput(input)
		if err := con.commands.ValidateTokens(tokens); err != nil {
			con.printError(err)
			continue
		}

		command, _ := tokens.Get()
		switch strings.ToUpper(command) {
		case cmdQuit:
			return nil

		case cmdStep:
			if err := con.stp.Step(); err != nil {
				con.printError(err)
				continue
			}
			if err := con.dsh.OnStop(); err != nil {
				con.printError(err)
			}

		default:
			if err := con.dsh.ParseInput(input); err != nil {
				con.printError(err)
			}

			// the dashboard's help doesn't know about the console's
			// own commands
			if strings.ToUpper(command) == "HELP" && tokens.IsEnd() {
				for _, cmd := range []string{cmdStep, cmdQuit} {
					con.trm.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("%-12s %s", cmd, consoleHelp[cmd]))
				}
			}
		}
	}
}

func (con *Console) printError(err error) {
	con.trm.TermPrintLine(terminal.StyleError, err.Error())
}
