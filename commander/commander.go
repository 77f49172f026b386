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
package commander

import (
	"errors"
	"fmt"
	"log"

	"github.com/timburks/jot/editor"
	jot "github.com/timburks/jot/types"
)

// ErrUnknownKey is returned for keys jot has no command for when the
// commander's policy is UnknownKeyAbort.
var ErrUnknownKey = errors.New("unknown key")

// UnknownKeyPolicy says what to do with a key that has no command.
type UnknownKeyPolicy int

const (
	UnknownKeyAbort UnknownKeyPolicy = iota
	UnknownKeyIgnore
)

// The Commander converts user input into cursor operations.
type Commander struct {
	editor  *editor.Editor
	running bool
	policy  UnknownKeyPolicy
	ignored int // unknown keys skipped under UnknownKeyIgnore
}

func NewCommander(e *editor.Editor) *Commander {
	return &Commander{editor: e, running: true, policy: UnknownKeyAbort}
}

func (c *Commander) SetUnknownKeyPolicy(p UnknownKeyPolicy) {
	c.policy = p
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

// Ignored counts the unknown keys that were skipped.
func (c *Commander) Ignored() int {
	return c.ignored
}

// ProcessEvent handles one event. A nil event means the input is exhausted
// and ends the session as if escape had been pressed.
func (c *Commander) ProcessEvent(event *jot.Event) error {
	if event == nil {
		c.running = false
		return nil
	}
	switch event.Type {
	case jot.EventKey:
		return c.ProcessKey(event)
	case jot.EventResize:
		return nil
	case jot.EventError:
		c.running = false
		return fmt.Errorf("reading input: %w", event.Err)
	default:
		return nil
	}
}

// ProcessKey performs exactly one cursor operation for a key.
func (c *Commander) ProcessKey(event *jot.Event) error {
	cursor := c.editor.Cursor
	switch event.Key {
	case jot.KeyEsc:
		c.running = false
	case jot.KeyArrowLeft:
		cursor.MoveLeft()
	case jot.KeyArrowRight:
		cursor.MoveRight()
	case jot.KeyArrowUp:
		cursor.MoveUp()
	case jot.KeyArrowDown:
		cursor.MoveDown()
	case jot.KeyEnter:
		cursor.Newline()
	case jot.KeyBackspace:
		cursor.Delete()
	case jot.KeyTab:
		cursor.Tab()
	case jot.KeyChar:
		switch event.Ch {
		case '\n', '\r':
			cursor.Newline()
		case '\t':
			cursor.Tab()
		case 0:
			return c.unknownKey(event)
		default:
			cursor.Insert(event.Ch)
		}
	default:
		return c.unknownKey(event)
	}
	return nil
}

func (c *Commander) unknownKey(event *jot.Event) error {
	if c.policy == UnknownKeyIgnore {
		c.ignored++
		log.Printf("ignoring %s key (code %d)", event.Key, event.Code)
		return nil
	}
	c.running = false
	return fmt.Errorf("%w: %s (code %d)", ErrUnknownKey, event.Key, event.Code)
}

// Run redraws the display and handles events until escape is pressed or
// an event cannot be handled.
func (c *Commander) Run(display jot.Display, source jot.EventSource) error {
	for c.IsRunning() {
		display.Render(c.editor.Cursor.Lines(), c.editor.Cursor.GetCursor())
		if err := c.ProcessEvent(source.GetNextEvent()); err != nil {
			return err
		}
	}
	return nil
}
