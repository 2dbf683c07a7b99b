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
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/debugdash/curated"
)

const stateError = "state: %v"

// writeState dumps the dashboard's internal state, as a graphviz dot graph,
// to the named file. useful when a registry or the display policy is not
// behaving and a bug report is being put together.
func (dsh *Dashboard) writeState(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(stateError, err)
	}
	defer f.Close()

	memviz.Map(f, dsh)

	return nil
}
