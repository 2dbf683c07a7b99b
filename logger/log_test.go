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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/debugdash/logger"
	"github.com/jetsetilly/debugdash/test"
)

func TestCentral(t *testing.T) {
	logger.Clear()

	b := &strings.Builder{}
	test.ExpectedFailure(t, logger.Write(b))
	test.Equate(t, b.String(), "")

	logger.Log("test", "this is a test")
	test.ExpectedSuccess(t, logger.Write(b))
	test.Equate(t, b.String(), "test: this is a test\n")

	// clearing should empty the log
	logger.Clear()
	b.Reset()
	test.ExpectedFailure(t, logger.Write(b))
	test.Equate(t, b.String(), "")
}

func TestRepeats(t *testing.T) {
	logger.Clear()

	// repeated entries collapse into one entry with a repeat count
	logger.Log("test", "repeated detail")
	logger.Log("test", "repeated detail")
	logger.Log("test", "repeated detail")

	b := &strings.Builder{}
	test.ExpectedSuccess(t, logger.Write(b))
	test.Equate(t, b.String(), "test: repeated detail (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Logf("test", "entry %d", 1)
	logger.Logf("test", "entry %d", 2)
	logger.Logf("test", "entry %d", 3)

	b := &strings.Builder{}
	logger.Tail(b, 2)
	test.Equate(t, b.String(), "test: entry 2\ntest: entry 3\n")

	// a tail longer than the log is capped
	b.Reset()
	logger.Tail(b, 100)
	test.Equate(t, b.String(), "test: entry 1\ntest: entry 2\ntest: entry 3\n")
}
