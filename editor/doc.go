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

// Package editor implements the text editing core of jot.
// A Buffer holds the lines of a file and a Cursor is the only thing that
// changes them. Cursor rows count from 1, and a cursor column can sit one
// past the end of its row, where typed text is appended.
// The Editor pairs the two and reads and writes the file they came from.
package editor
