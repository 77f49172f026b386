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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotUTF8 is returned by ReadFile for files that are not UTF-8 text.
// Loading them would replace the bad bytes on the next save.
var ErrNotUTF8 = errors.New("not valid UTF-8")

// The Editor couples a Buffer with the Cursor that edits it.
type Editor struct {
	Buffer *Buffer
	Cursor *Cursor
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.Cursor = NewCursor(e.Buffer)
	return e
}

// NewEditorWithLines is mostly useful for tests.
func NewEditorWithLines(lines []string) *Editor {
	e := &Editor{}
	e.Buffer = NewBufferWithLines(lines)
	e.Cursor = NewCursor(e.Buffer)
	return e
}

// SplitLines breaks file contents into lines. A final line terminator does
// not start another line, and carriage returns before newlines are dropped.
// A carriage return at the very end, with no newline after it, is kept.
func SplitLines(b []byte) []string {
	s := string(b)
	if s == "" {
		return nil
	}
	terminated := strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}

// ReadFile loads path into the buffer, creating an empty file if there is
// none, and puts the cursor at the end of the last line.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		var f *os.File
		f, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		f.Close()
		b, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(b) {
		return fmt.Errorf("reading %s: %w", path, ErrNotUTF8)
	}
	e.Buffer.LoadLines(SplitLines(b))
	e.Buffer.SetFileName(path)
	e.Cursor = NewCursor(e.Buffer)
	return nil
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

// WriteFile truncates path and writes every line of the buffer to it.
func (e *Editor) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err = f.Write(e.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func (e *Editor) GetFileName() string {
	return e.Buffer.GetFileName()
}
