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

// the sentinel value used when a previously valid key can no longer be
// resolved through the host. one dead register must not blank the rest.
const resolveFailure = "Error"

// keyValue is a tracked key and the host's current rendition of its value.
type keyValue struct {
	key   string
	value string
}

// trackedList is an ordered list of keys (register or variable names) that
// are resolved through the host on every display.
//
// the prefix is prepended to a key to form the expression given to the host.
// registers use the host's register sigil ("$"), variables use no prefix.
type trackedList struct {
	prefix string
	keys   []string
}

func newTrackedList(prefix string) *trackedList {
	return &trackedList{
		prefix: prefix,
		keys:   make([]string, 0, 10),
	}
}

// add a key to the list. returns false, with no mutation, if the key is
// already present or if the host cannot currently resolve it. insertion
// order is preserved and is the display order.
func (lst *trackedList) add(hst Host, key string) bool {
	for _, k := range lst.keys {
		if k == key {
			return false
		}
	}

	// the key must resolve at add time
	if _, err := hst.Evaluate(lst.prefix + key); err != nil {
		return false
	}

	lst.keys = append(lst.keys, key)
	return true
}

// remove a key from the list. returns false if the key is not present.
func (lst *trackedList) remove(key string) bool {
	for i, k := range lst.keys {
		if k == key {
			lst.keys = append(lst.keys[:i], lst.keys[i+1:]...)
			return true
		}
	}
	return false
}

// resolve re-queries the host for every tracked key, in insertion order. a
// key that no longer resolves is given the resolveFailure sentinel value
// rather than aborting the whole pass.
func (lst *trackedList) resolve(hst Host) []keyValue {
	values := make([]keyValue, 0, len(lst.keys))
	for _, k := range lst.keys {
		v, err := hst.Evaluate(lst.prefix + k)
		if err != nil {
			v = resolveFailure
		}
		values = append(values, keyValue{key: k, value: v})
	}
	return values
}

func (lst *trackedList) len() int {
	return len(lst.keys)
}

// commandList is an ordered list of raw host commands. commands are
// deliberately not validated at add time - a command may only be valid at a
// later execution point.
type commandList struct {
	commands []string
}

func newCommandList() *commandList {
	return &commandList{
		commands: make([]string, 0, 10),
	}
}

// add a command to the list. returns false if the identical command text is
// already present.
func (lst *commandList) add(command string) bool {
	for _, c := range lst.commands {
		if c == command {
			return false
		}
	}
	lst.commands = append(lst.commands, command)
	return true
}

// remove the command at the index. returns false if the index is out of
// range.
func (lst *commandList) remove(index int) bool {
	if index < 0 || index >= len(lst.commands) {
		return false
	}
	lst.commands = append(lst.commands[:index], lst.commands[index+1:]...)
	return true
}

func (lst *commandList) len() int {
	return len(lst.commands)
}
