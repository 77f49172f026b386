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
	"log"

	"github.com/steelseries/golisp"
)

type cursorFunction func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

// bindLisp makes the cursor operations of this commander's editor callable
// from lisp. Each movement or edit returns the resulting column.
func (c *Commander) bindLisp() {
	step := func(f func()) cursorFunction {
		return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			f()
			return golisp.IntegerWithValue(int64(c.editor.Cursor.Col)), nil
		}
	}
	cursor := c.editor.Cursor
	golisp.MakePrimitiveFunction("left", "0", step(cursor.MoveLeft))
	golisp.MakePrimitiveFunction("right", "0", step(cursor.MoveRight))
	golisp.MakePrimitiveFunction("up", "0", step(cursor.MoveUp))
	golisp.MakePrimitiveFunction("down", "0", step(cursor.MoveDown))
	golisp.MakePrimitiveFunction("newline", "0", step(cursor.Newline))
	golisp.MakePrimitiveFunction("backspace", "0", step(cursor.Delete))
	golisp.MakePrimitiveFunction("tab", "0", step(cursor.Tab))
	golisp.MakePrimitiveFunction("insert", "1", c.insertImpl)
	golisp.MakePrimitiveFunction("line", "1", c.lineImpl)
	golisp.MakePrimitiveFunction("line-count", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.editor.Buffer.GetRowCount())), nil
	})
	golisp.MakePrimitiveFunction("cursor-row", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.editor.Cursor.Row)), nil
	})
	golisp.MakePrimitiveFunction("cursor-col", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.IntegerWithValue(int64(c.editor.Cursor.Col)), nil
	})
}

// (insert "text") inserts each character in turn, as if typed.
// Newlines and tabs behave like the enter and tab keys.
func (c *Commander) insertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert requires a string argument")
	}
	cursor := c.editor.Cursor
	for _, ch := range golisp.StringValue(val) {
		switch ch {
		case '\n':
			cursor.Newline()
		case '\t':
			cursor.Tab()
		default:
			cursor.Insert(ch)
		}
	}
	return golisp.IntegerWithValue(int64(cursor.Col)), nil
}

// (line n) returns the text of row n, counting from 1.
func (c *Commander) lineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("line requires an integer argument")
	}
	n := int(golisp.IntegerValue(val))
	if n < 1 || n > c.editor.Buffer.GetRowCount() {
		return nil, errors.New("line number out of range")
	}
	return golisp.StringWithValue(c.editor.Buffer.GetRow(n - 1).String()), nil
}

// ParseEval runs a lisp program against the editor and returns the printed
// form of its value.
func (c *Commander) ParseEval(command string) (string, error) {
	c.bindLisp()
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	result := golisp.String(value)
	log.Printf("SEXPR %s", result)
	return result, nil
}
