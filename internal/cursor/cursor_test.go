// Copyright 2026 The JXON Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cursor_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/cstuartroe/jxon/internal/cursor"
)

func TestNextAndAdvance(t *testing.T) {
	c := cursor.New("ab\ncd")
	got, err := c.Next(2, true)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "ab"))

	c.Advance(2)
	qt.Assert(t, qt.IsTrue(c.EOL()))

	c.Advance(1)
	got, err = c.Next(2, true)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "cd"))
}

func TestBreakpointAndJump(t *testing.T) {
	c := cursor.New("abcdef")
	bp := c.Breakpoint()
	c.Advance(3)
	got, _ := c.Next(1, true)
	qt.Assert(t, qt.Equals(got, "d"))

	c.Jump(bp)
	got, _ = c.Next(1, true)
	qt.Assert(t, qt.Equals(got, "a"))
}

func TestExpectFailureCaret(t *testing.T) {
	c := cursor.New("abc")
	err := c.Expect("x")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	qt.Assert(t, qt.StringContains(err.Error(), "(line 1, col 1)"))
	qt.Assert(t, qt.StringContains(err.Error(), "^"))
}

func TestEOFSentinel(t *testing.T) {
	c := cursor.New("a")
	c.Advance(1)
	got, err := c.Next(1, true)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, string(cursor.NUL)))

	_, err = c.Next(1, false)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}
