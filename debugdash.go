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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/debugdash/console"
	"github.com/jetsetilly/debugdash/demohost"
	"github.com/jetsetilly/debugdash/logger"
	"github.com/jetsetilly/debugdash/modalflag"
	"github.com/jetsetilly/debugdash/statsview"
	"github.com/jetsetilly/debugdash/terminal"
	"github.com/jetsetilly/debugdash/terminal/colorterm"
	"github.com/jetsetilly/debugdash/terminal/plainterm"
	"github.com/jetsetilly/debugdash/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("VERSION")
	md.AddDefaultSubMode("CONSOLE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "CONSOLE":
		err = consoleMode(md)
	case "VERSION":
		err = versionMode(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func consoleMode(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var trm terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	case "PLAIN":
		trm = &plainterm.PlainTerminal{}
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		trm = &plainterm.PlainTerminal{}
	}

	if err := trm.Initialise(); err != nil {
		return err
	}
	defer trm.CleanUp()

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! stats server not available in this build")
		}
	}

	hst, err := demohost.NewDemoHost(trm)
	if err != nil {
		return err
	}

	return console.NewConsole(hst, hst, trm).Run()
}

func versionMode(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Printf("%s %s (%s)\n", version.ApplicationName, ver, rev)

	return nil
}
