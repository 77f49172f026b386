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
	"bytes"
)

// A Buffer holds the lines of the file being edited.
// A Buffer always contains at least one row.
type Buffer struct {
	rows     []*Row
	fileName string
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = []*Row{NewRow("")}
	return b
}

// NewBufferWithLines returns a buffer holding a copy of lines.
func NewBufferWithLines(lines []string) *Buffer {
	b := &Buffer{}
	b.LoadLines(lines)
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// LoadLines replaces the contents of the buffer.
// No lines at all becomes a single empty line.
func (b *Buffer) LoadLines(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

// Bytes returns the file contents: every line followed by a newline.
func (b *Buffer) Bytes() []byte {
	var buf bytes.Buffer
	for _, row := range b.rows {
		buf.WriteString(row.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// rows are indexed from zero here; the cursor converts from its 1-based rows.
func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetRow(i int) *Row {
	return b.rows[i]
}

// InsertRow places r so that it becomes row i.
func (b *Buffer) InsertRow(i int, r *Row) {
	if i < 0 {
		i = 0
	}
	if i > len(b.rows) {
		i = len(b.rows)
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = r
}

// JoinRows appends row i+1 to row i and removes row i+1.
func (b *Buffer) JoinRows(i int) {
	if i < 0 || i+1 >= len(b.rows) {
		return
	}
	b.rows[i].Join(b.rows[i+1])
	b.rows = append(b.rows[0:i+1], b.rows[i+2:]...)
}
