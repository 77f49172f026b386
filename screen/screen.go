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
package screen

import (
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	jot "github.com/timburks/jot/types"
)

// The Screen owns the terminal while jot is running.
// It draws the buffer and reads key events.
type Screen struct {
	size      jot.Size // screen size
	closeOnce sync.Once
}

// NewScreen puts the terminal in raw mode. Call Close to restore it.
func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() {
	s.closeOnce.Do(termbox.Close)
}

// Render clears the screen, draws every line and places the cursor.
func (s *Screen) Render(lines []string, cursor jot.Point) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()
	for i, line := range lines {
		if i >= s.size.Rows {
			break
		}
		x := 0
		for _, ch := range line {
			if x >= s.size.Cols {
				break
			}
			termbox.SetCell(x, i, ch, termbox.ColorGreen|termbox.AttrBold, termbox.ColorDefault)
			x += cellWidth(ch)
		}
	}
	if cursor.Row >= 1 && cursor.Row <= len(lines) {
		termbox.SetCursor(CursorCell(lines[cursor.Row-1], cursor.Col), cursor.Row-1)
	}
	termbox.Flush()
}

// CursorCell returns the screen column for a cursor column in line.
func CursorCell(line string, col int) int {
	text := []rune(line)
	n := col - 1
	if n < 0 {
		n = 0
	}
	if n > len(text) {
		n = len(text)
	}
	x := 0
	for _, ch := range text[:n] {
		x += cellWidth(ch)
	}
	return x
}

// zero-width characters still occupy a cell when drawn one per cell
func cellWidth(ch rune) int {
	if w := runewidth.RuneWidth(ch); w > 0 {
		return w
	}
	return 1
}

func (s *Screen) GetNextEvent() *jot.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return KeyEvent(event)
	case termbox.EventResize:
		termbox.Flush()
		return &jot.Event{Type: jot.EventResize}
	case termbox.EventError:
		return &jot.Event{Type: jot.EventError, Err: event.Err}
	default:
		return &jot.Event{Type: jot.EventResize}
	}
}

// KeyEvent converts a termbox key event.
func KeyEvent(event termbox.Event) *jot.Event {
	e := &jot.Event{Type: jot.EventKey, Code: int(event.Key), Ch: event.Ch}
	if event.Ch != 0 {
		e.Key = jot.KeyChar
		return e
	}
	e.Key = key(event.Key)
	if e.Key == jot.KeyChar {
		e.Ch = ' '
	}
	return e
}

func key(k termbox.Key) jot.Key {
	switch k {
	case termbox.KeyEsc:
		return jot.KeyEsc
	case termbox.KeyArrowLeft:
		return jot.KeyArrowLeft
	case termbox.KeyArrowRight:
		return jot.KeyArrowRight
	case termbox.KeyArrowUp:
		return jot.KeyArrowUp
	case termbox.KeyArrowDown:
		return jot.KeyArrowDown
	case termbox.KeyEnter:
		return jot.KeyEnter
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return jot.KeyBackspace
	case termbox.KeyTab:
		return jot.KeyTab
	case termbox.KeySpace:
		return jot.KeyChar
	default:
		return jot.KeyOther
	}
}
