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
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/timburks/jot/commander"
	"github.com/timburks/jot/editor"
	"github.com/timburks/jot/screen"
)

const usage = "usage: jot [--ignore-unknown-keys] [--eval SCRIPT] FILE"

var errUsage = errors.New(usage)

type config struct {
	filename          string
	script            string
	ignoreUnknownKeys bool
	logPath           string
}

func parseArgs(args []string) (*config, error) {
	cfg := &config{logPath: logPath()}
	filenames := make([]string, 0)
	for i := 0; i < len(args); i++ {
		argi := args[i]
		switch {
		case argi == "--eval": // eval program
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("no script specified for --eval option: %w", errUsage)
			}
			cfg.script = args[i]
		case argi == "--ignore-unknown-keys":
			cfg.ignoreUnknownKeys = true
		case strings.HasPrefix(argi, "--"):
			return nil, fmt.Errorf("unknown option %s: %w", argi, errUsage)
		default:
			filenames = append(filenames, argi)
		}
	}
	if len(filenames) != 1 {
		return nil, errUsage
	}
	cfg.filename = filenames[0]
	return cfg, nil
}

// JOT_LOG overrides the default log file in the home directory.
func logPath() string {
	if path := os.Getenv("JOT_LOG"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".jotlog")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 2
	}

	// Open a log file; the screen belongs to the editor.
	f, err := os.OpenFile(cfg.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(f)
		defer f.Close()
	}

	// The editor holds the buffer and the cursor that edits it.
	e := editor.NewEditor()
	if err = e.ReadFile(cfg.filename); err != nil {
		log.Output(1, err.Error())
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	log.Printf("editing %s (%d lines)", cfg.filename, e.Buffer.GetRowCount())

	// The commander converts user inputs into cursor operations.
	c := commander.NewCommander(e)
	if cfg.ignoreUnknownKeys {
		c.SetUnknownKeyPolicy(commander.UnknownKeyIgnore)
	}

	if cfg.script != "" {
		// Run a jot script against the file instead of the screen.
		_, err = c.ParseEval(cfg.script)
	} else {
		err = edit(c)
	}
	if err != nil {
		log.Output(1, err.Error())
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	if err = e.WriteFile(cfg.filename); err != nil {
		log.Output(1, err.Error())
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// edit runs the interactive session. The terminal is restored on every way
// out, including panics and termination signals.
func edit(c *commander.Commander) error {
	s, err := screen.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer s.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	done := make(chan struct{})
	defer close(done)
	go handleSignals(signals, done, func(sig os.Signal) {
		s.Close()
		log.Printf("exiting on %v without saving", sig)
		os.Exit(1)
	})

	return c.Run(s, s)
}

// handleSignals calls quit with the first signal received. It returns
// without calling quit once done is closed.
func handleSignals(signals <-chan os.Signal, done <-chan struct{}, quit func(os.Signal)) {
	select {
	case sig := <-signals:
		quit(sig)
	case <-done:
	}
}
