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

// Thread identifies the currently selected thread of the debuggee.
type Thread struct {
	ID int
}

// SourceLocation is the source file and line corresponding to an address in
// the debuggee. A location only exists if the host has line-table
// information for the address.
type SourceLocation struct {
	Filename string
	Line     int
}

// Frame describes the currently selected frame of the debuggee.
type Frame struct {
	PC uint64

	// Source is nil if the host has no line-table entry for PC (stripped
	// binary, no debug information, etc.)
	Source *SourceLocation
}

// Host is the capability interface to the underlying native debugger. The
// dashboard consumes a Host, it never implements one.
//
// Every function can fail at any time. The debuggee is live: the target
// process can exit, registers can vanish and symbols can be stripped between
// one call and the next. Callers must treat any value returned by a Host as
// valid only for the duration of the current stop.
//
// Output from ExecuteNative() (with capture false), Disassemble() and
// Unwind() is written by the host to its own output, preserving whatever
// styling the host natively applies. The dashboard never post-processes
// host-native output.
type Host interface {
	// Evaluate an expression in the context of the current frame, returning
	// the host's string rendition of the value
	Evaluate(expression string) (string, error)

	// SelectedThread returns the currently selected thread. fails if no
	// thread is selected (eg. the debuggee has not been started)
	SelectedThread() (Thread, error)

	// CurrentFrame returns the currently selected frame
	CurrentFrame() (Frame, error)

	// ExecuteNative runs a host-native command. if capture is true the
	// command's output is returned as a string rather than being written to
	// the host's output
	ExecuteNative(command string, capture bool) (string, error)

	// Disassemble count instructions starting at the start address, writing
	// the host's native disassembly listing to the host's output
	Disassemble(start uint64, count int) error

	// Unwind the stack to a maximum number of frames, writing the host's
	// native backtrace listing to the host's output
	Unwind(maxFrames int) error
}
