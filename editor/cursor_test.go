//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	jot "github.com/timburks/jot/types"
)

func cursorAt(lines []string, col, row int) *Cursor {
	c := NewCursor(NewBufferWithLines(lines))
	c.SetCursor(jot.Point{Col: col, Row: row})
	return c
}

func check(t *testing.T, c *Cursor, lines []string, col, row int) {
	t.Helper()
	if diff := cmp.Diff(lines, c.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if got := c.GetCursor(); got != (jot.Point{Col: col, Row: row}) {
		t.Errorf("cursor is %+v, want col %d row %d", got, col, row)
	}
}

// checkInvariants fails if the cursor is outside its buffer.
func checkInvariants(t *testing.T, c *Cursor) {
	t.Helper()
	n := c.GetBuffer().GetRowCount()
	if n < 1 {
		t.Fatalf("buffer has %d rows", n)
	}
	if c.Row < 1 || c.Row > n {
		t.Fatalf("row %d outside [1, %d]", c.Row, n)
	}
	if end := c.GetBuffer().GetRowLength(c.Row-1) + 1; c.Col < 0 || c.Col > end {
		t.Fatalf("col %d outside [0, %d]", c.Col, end)
	}
}

func TestNewCursor(t *testing.T) {
	check(t, NewCursor(NewBufferWithLines([]string{"ab", "cde"})), []string{"ab", "cde"}, 4, 2)
	check(t, NewCursor(NewBufferWithLines(nil)), []string{""}, 1, 1)
}

func TestMoveUpDown(t *testing.T) {
	lines := []string{"short", "a much longer line", ""}
	c := cursorAt(lines, 15, 2)
	c.MoveUp()
	check(t, c, lines, 6, 1)
	c.MoveUp()
	check(t, c, lines, 6, 1)
	c.MoveDown()
	check(t, c, lines, 6, 2)
	c.MoveDown()
	check(t, c, lines, 1, 3)
	c.MoveDown()
	check(t, c, lines, 1, 3)
}

func TestMoveLeftRight(t *testing.T) {
	lines := []string{"ab"}
	c := cursorAt(lines, 2, 1)
	c.MoveLeft()
	check(t, c, lines, 1, 1)
	c.MoveLeft()
	check(t, c, lines, 0, 1)
	c.MoveLeft()
	check(t, c, lines, 0, 1)
	for i := 0; i < 5; i++ {
		c.MoveRight()
	}
	check(t, c, lines, 3, 1)
}

func TestInsert(t *testing.T) {
	c := cursorAt([]string{"ac"}, 2, 1)
	c.Insert('b')
	check(t, c, []string{"abc"}, 3, 1)
	c.SetCursor(jot.Point{Col: 0, Row: 1})
	c.Insert('>')
	check(t, c, []string{">abc"}, 2, 1)
	c.SetCursor(jot.Point{Col: 5, Row: 1})
	c.Insert('!')
	check(t, c, []string{">abc!"}, 6, 1)
	c.Insert('é')
	check(t, c, []string{">abc!é"}, 7, 1)
}

func TestDelete(t *testing.T) {
	for _, tt := range []struct {
		name     string
		lines    []string
		col, row int
		want     []string
		wantCol  int
		wantRow  int
	}{
		{"interior", []string{"abc"}, 3, 1, []string{"ac"}, 2, 1},
		{"end of line", []string{"abc"}, 4, 1, []string{"ab"}, 3, 1},
		{"start of first line", []string{"abc"}, 1, 1, []string{"abc"}, 1, 1},
		{"before start of line", []string{"a", "b"}, 0, 2, []string{"a", "b"}, 0, 2},
		{"join", []string{"a", "b"}, 1, 2, []string{"ab"}, 2, 1},
		{"join last line", []string{"x", "ab", "cd"}, 1, 3, []string{"x", "abcd"}, 3, 2},
		{"join empty lines", []string{"", ""}, 1, 2, []string{""}, 1, 1},
		{"past end of line", []string{"abc"}, 9, 1, []string{"ab"}, 8, 1},
		{"past end of empty line", []string{""}, 3, 1, []string{""}, 2, 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := cursorAt(tt.lines, tt.col, tt.row)
			c.Delete()
			check(t, c, tt.want, tt.wantCol, tt.wantRow)
		})
	}
}

func TestNewline(t *testing.T) {
	for _, tt := range []struct {
		name     string
		lines    []string
		col, row int
		want     []string
	}{
		{"middle", []string{"abc"}, 2, 1, []string{"a", "bc"}},
		{"start", []string{"abc"}, 1, 1, []string{"", "abc"}},
		{"before start", []string{"abc"}, 0, 1, []string{"", "abc"}},
		{"end", []string{"abc"}, 4, 1, []string{"abc", ""}},
		{"empty line", []string{"x", "", "y"}, 1, 2, []string{"x", "", "", "y"}},
		{"empty line before start", []string{""}, 0, 1, []string{"", ""}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := cursorAt(tt.lines, tt.col, tt.row)
			c.Newline()
			check(t, c, tt.want, 1, tt.row+1)
		})
	}
}

func TestTab(t *testing.T) {
	c := cursorAt([]string{"ab"}, 2, 1)
	c.Tab()
	check(t, c, []string{"a    b"}, 6, 1)
}

func TestScenarios(t *testing.T) {
	t.Run("delete after moving left", func(t *testing.T) {
		c := NewCursor(NewBufferWithLines([]string{"ab", "cd"}))
		check(t, c, []string{"ab", "cd"}, 3, 2)
		c.MoveLeft()
		c.Delete()
		check(t, c, []string{"ab", "d"}, 1, 2)
	})
	t.Run("delete at start of line after moving left twice", func(t *testing.T) {
		c := NewCursor(NewBufferWithLines([]string{"ab", "cd"}))
		c.MoveLeft()
		c.MoveLeft()
		c.Delete()
		check(t, c, []string{"abcd"}, 3, 1)
	})
	t.Run("enter splits line", func(t *testing.T) {
		c := cursorAt([]string{"abc"}, 2, 1)
		c.Newline()
		check(t, c, []string{"a", "bc"}, 1, 2)
	})
	t.Run("backspace joins lines", func(t *testing.T) {
		c := cursorAt([]string{"a", "b"}, 1, 2)
		c.Delete()
		check(t, c, []string{"ab"}, 2, 1)
	})
	t.Run("tab in empty file", func(t *testing.T) {
		c := NewCursor(NewBufferWithLines(nil))
		c.Tab()
		check(t, c, []string{"    "}, 5, 1)
	})
}

var samples = []string{"", "a", "hello", "hello, world", "tabs\tand spaces", "héllo wörld"}

func TestSplitJoinRoundTrip(t *testing.T) {
	for _, line := range samples {
		for col := 1; col <= len([]rune(line))+1; col++ {
			c := cursorAt([]string{"above", line, "below"}, col, 2)
			c.Newline()
			c.Delete()
			want := []string{"above", line, "below"}
			if diff := cmp.Diff(want, c.Lines()); diff != "" {
				t.Errorf("split at %d of %q (-want +got):\n%s", col, line, diff)
			}
			if c.Row != 2 {
				t.Errorf("split at %d of %q left cursor on row %d", col, line, c.Row)
			}
		}
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	for _, line := range samples {
		for col := 1; col <= len([]rune(line))+1; col++ {
			c := cursorAt([]string{line}, col, 1)
			c.Insert('x')
			c.Delete()
			check(t, c, []string{line}, col, 1)
		}
	}
}

func TestBoundaries(t *testing.T) {
	lines := []string{"one", "two"}
	c := cursorAt(lines, 2, 1)
	c.MoveUp()
	check(t, c, lines, 2, 1)
	c = cursorAt(lines, 2, 2)
	c.MoveDown()
	check(t, c, lines, 2, 2)
	c = cursorAt(lines, 1, 1)
	c.Delete()
	check(t, c, lines, 1, 1)
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	c := NewCursor(NewBufferWithLines([]string{"The quick brown fox", "", "jumps over", "the lazy dog"}))
	operations := []func(){
		c.MoveUp, c.MoveDown, c.MoveLeft, c.MoveRight,
		c.Delete, c.Delete, c.Newline, c.Tab,
		func() { c.Insert('z') },
		func() { c.Insert('ü') },
	}
	for i := 0; i < 5000; i++ {
		operations[r.Intn(len(operations))]()
		checkInvariants(t, c)
	}
}
