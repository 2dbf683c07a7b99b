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

// Package terminal defines the operations required for a console interface
// to the dashboard. Two reference implementations are in the colorterm and
// plainterm sub-packages.
//
// Output is a sequence of lines, each with a Style hint. Terminal
// implementations decide how (or whether) to express a style. Dashboard and
// host output lines are the exception: they arrive with any styling already
// applied and are printed verbatim.
package terminal
