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

package commandline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/debugdash/curated"
)

// error patterns returned by ValidateTokens.
const (
	InputEmpty          = "no input"
	UnrecognisedCommand = "unrecognised command: %s"
	TooManyArgs         = "too many arguments for %s"
	TooFewArgs          = "%s required for %s"
	InvalidArg          = "%s is not a valid %s for %s"
)

// ArgType defines the expected type of an argument.
type ArgType int

// The possible values for ArgType.
const (
	// one of a fixed list of keywords
	ArgKeyword ArgType = iota

	// an unsigned address. "0x" prefixed hexadecimal or decimal
	ArgAddress

	// a signed decimal number
	ArgValue

	// a free-form token
	ArgString

	// any number of trailing tokens, including none
	ArgIndeterminate
)

func (typ ArgType) String() string {
	switch typ {
	case ArgKeyword:
		return "keyword"
	case ArgAddress:
		return "address"
	case ArgValue:
		return "numeric argument"
	case ArgString:
		return "string argument"
	case ArgIndeterminate:
		return "argument list"
	}
	return "argument"
}

// Arg specifies the type and properties of an individual argument.
type Arg struct {
	Typ  ArgType
	Req  bool
	Vals []string // allowed keywords, ArgKeyword only
}

// CommandArgs is the list of Args for each command.
type CommandArgs []Arg

// Commands is the root of the command definition "tree": a mapping from
// keyword to expected arguments.
type Commands map[string]CommandArgs

// List returns the command keywords in alphabetical order.
func (cmds Commands) List() []string {
	l := make([]string, 0, len(cmds))
	for k := range cmds {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}

func (a CommandArgs) maxLen() int {
	if len(a) == 0 {
		return 0
	}
	if a[len(a)-1].Typ == ArgIndeterminate {
		return int(^uint(0) >> 1)
	}
	return len(a)
}

func (a CommandArgs) minLen() (m int) {
	for i := 0; i < len(a); i++ {
		if !a[i].Req {
			return m
		}
		if a[i].Typ == ArgIndeterminate {
			return m + 1
		}
		m++
	}
	return m
}

// ParseAddress converts a string to an unsigned address. Hexadecimal values
// must be prefixed with "0x"; anything else is treated as decimal.
func ParseAddress(s string) (uint64, error) {
	var v uint64
	var err error

	if strings.HasPrefix(strings.ToLower(s), "0x") {
		v, err = strconv.ParseUint(s[2:], 16, 64)
	} else {
		v, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, curated.Errorf("invalid address: %s", s)
	}

	return v, nil
}

// ValidateTokens checks the tokenised input against the command definitions.
// The token traversal is reset on success, ready for the caller to walk the
// arguments.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	tokens.Reset()

	command, ok := tokens.Get()
	if !ok {
		return curated.Errorf(InputEmpty)
	}
	command = strings.ToUpper(command)

	args, ok := cmds[command]
	if !ok {
		return curated.Errorf(UnrecognisedCommand, command)
	}

	// too *many* arguments have been supplied
	if tokens.Remaining() > args.maxLen() {
		return curated.Errorf(TooManyArgs, command)
	}

	// too *few* arguments have been supplied
	if tokens.Remaining() < args.minLen() {
		return curated.Errorf(TooFewArgs, args[tokens.Remaining()].Typ.String(), command)
	}

	// type check each argument in turn
	for i := 0; i < len(args); i++ {
		tok, ok := tokens.Get()
		if !ok {
			break
		}

		switch args[i].Typ {
		case ArgKeyword:
			if len(args[i].Vals) > 0 {
				match := false
				for _, v := range args[i].Vals {
					if strings.ToUpper(tok) == v {
						match = true
						break
					}
				}
				if !match {
					return curated.Errorf(InvalidArg, tok, args[i].Typ.String(), command)
				}
			}

		case ArgAddress:
			if _, err := ParseAddress(tok); err != nil {
				return curated.Errorf(InvalidArg, tok, args[i].Typ.String(), command)
			}

		case ArgValue:
			if _, err := strconv.Atoi(tok); err != nil {
				return curated.Errorf(InvalidArg, tok, args[i].Typ.String(), command)
			}

		case ArgString:
			// any token is acceptable

		case ArgIndeterminate:
			tokens.End()
		}
	}

	tokens.Reset()

	return nil
}
