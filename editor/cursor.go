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
	jot "github.com/timburks/jot/types"
)

const tabWidth = 4

// The Cursor is the only way to change a Buffer.
// Rows are 1-based. Columns run from 0 to the row length + 1; 0 and 1 are
// both the start of the row and 0 is only left behind by MoveLeft.
type Cursor struct {
	Col    int
	Row    int
	buffer *Buffer
}

// NewCursor places the cursor after the last character of the last row.
func NewCursor(b *Buffer) *Cursor {
	last := b.GetRowCount()
	return &Cursor{
		Col:    b.GetRowLength(last-1) + 1,
		Row:    last,
		buffer: b,
	}
}

func (c *Cursor) GetBuffer() *Buffer {
	return c.buffer
}

func (c *Cursor) GetCursor() jot.Point {
	return jot.Point{Col: c.Col, Row: c.Row}
}

// SetCursor moves the cursor without clamping its column.
// The row is kept inside the buffer.
func (c *Cursor) SetCursor(p jot.Point) {
	c.Row = p.Row
	if c.Row < 1 {
		c.Row = 1
	}
	if n := c.buffer.GetRowCount(); c.Row > n {
		c.Row = n
	}
	c.Col = p.Col
	if c.Col < 0 {
		c.Col = 0
	}
}

func (c *Cursor) Lines() []string {
	return c.buffer.Lines()
}

func (c *Cursor) row() *Row {
	return c.buffer.GetRow(c.Row - 1)
}

// the append position of the current row
func (c *Cursor) endOfRow() int {
	return c.row().Length() + 1
}

func (c *Cursor) keepCursorInRow() {
	if end := c.endOfRow(); c.Col > end {
		c.Col = end
	}
}

func (c *Cursor) MoveUp() {
	if c.Row-1 == 0 {
		return
	}
	c.Row--
	c.keepCursorInRow()
}

func (c *Cursor) MoveDown() {
	if c.Row == c.buffer.GetRowCount() {
		return
	}
	c.Row++
	c.keepCursorInRow()
}

func (c *Cursor) MoveLeft() {
	if c.Col != 0 {
		c.Col--
	}
}

func (c *Cursor) MoveRight() {
	c.Col++
	c.keepCursorInRow()
}

// Insert puts ch before the cursor and moves past it.
func (c *Cursor) Insert(ch rune) {
	if c.Col == 0 {
		c.Col = 1
	}
	c.row().InsertChar(c.Col-1, ch)
	c.MoveRight()
}

// Tab inserts spaces, not a tab character.
func (c *Cursor) Tab() {
	for i := 0; i < tabWidth; i++ {
		c.Insert(' ')
	}
}

// Delete removes the character before the cursor, joining the current row
// to the previous one at the start of a row.
func (c *Cursor) Delete() {
	switch {
	case c.Col > c.endOfRow():
		// only reachable if the column was set past the end of the row
		c.row().Pop()
		c.MoveLeft()
	case c.Col == 1 && c.Row > 1:
		c.Col = c.buffer.GetRowLength(c.Row-2) + 1
		c.buffer.JoinRows(c.Row - 2)
		c.MoveUp()
	case c.Col == 1:
		// nothing precedes the first character of the first row
	case c.Col > 1:
		c.row().DeleteChar(c.Col - 2)
		c.MoveLeft()
	}
}

// Newline splits the current row at the cursor and moves to the start of
// the new row.
func (c *Cursor) Newline() {
	if c.row().Length() == 0 {
		c.buffer.InsertRow(c.Row, NewRow(""))
	} else {
		if c.Col == 0 {
			c.Col = 1
		}
		c.buffer.InsertRow(c.Row, c.row().Split(c.Col-1))
	}
	c.MoveDown()
	c.Col = 1
}
