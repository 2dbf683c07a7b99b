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

// Package dashboard renders a configurable view of a stopped debuggee. it
// sits on top of a native debugger, reached through the Host interface, and
// owns no debugging machinery of its own.
//
// the view is divided into blocks. each block shows one category of
// information (thread id, backtrace, source context, registers, variables,
// memory, disassembly, tracked commands) and can be shown, hidden and
// reordered independently of the others. the registers, variables, memory
// and commands blocks draw on registries of tracked items which are
// validated when they are added, not when they are displayed.
//
// user control is through single line commands given to ParseInput. the
// OnStop function renders the current view and is intended to be called
// whenever the debuggee stops.
package dashboard
