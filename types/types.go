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
package types

import "fmt"

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventError  = 2
)

// Key identifies the keys that jot responds to.
// Printable characters arrive as KeyChar with the rune in Event.Ch.
type Key int

const (
	KeyOther Key = iota
	KeyEsc
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyEnter
	KeyBackspace
	KeyTab
	KeyChar
)

var keyNames = map[Key]string{
	KeyOther:      "other",
	KeyEsc:        "esc",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyEnter:      "enter",
	KeyBackspace:  "backspace",
	KeyTab:        "tab",
	KeyChar:       "char",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// An Event is a single input from the terminal.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Code int   // raw key code from the terminal, kept for logging
	Err  error // set for EventError
}

// A Point is a cursor position.
// Row is 1-based; Col runs from 0 to the line length + 1.
type Point struct {
	Col int
	Row int
}

type Size struct {
	Rows int
	Cols int
}

// A Display redraws the whole buffer and places the cursor.
type Display interface {
	Render(lines []string, cursor Point)
}

// An EventSource blocks until the next input event is available.
type EventSource interface {
	GetNextEvent() *Event
}
