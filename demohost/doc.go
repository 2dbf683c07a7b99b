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

// Package demohost provides a pretend debugging host for the dashboard. it
// simulates a small bare-metal debuggee, a handful of registers, a slab of
// memory and a looping program, without needing a real debugger or a real
// process.
//
// the demo host is what the CONSOLE mode attaches to. it is also useful in
// tests that want a Host with predictable behaviour.
package demohost
