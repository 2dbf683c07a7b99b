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

// Package commandline tokenises and validates user input against a table of
// command definitions. A definition is the command keyword plus an ordered
// list of typed arguments. Validation checks argument count and argument
// type; interpretation of the arguments is left to the dispatching code,
// which walks the same Tokens instance.
//
// The package also provides a terminal.TabCompletion implementation that
// completes command keywords.
package commandline
