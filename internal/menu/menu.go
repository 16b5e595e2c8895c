// Package menu is the text entry point: run the visualizer, read about it or exit.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sgostarter/i/l"
)

const (
	unknownDelay = 2 * time.Second
	easterDelay  = 3100 * time.Millisecond
)

// Menu reads choices line by line from In and writes screens to Out.
type Menu struct {
	In  io.Reader
	Out io.Writer

	// Run opens the visualizer. The menu ends once it returns.
	Run func() error
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
	// ClearScreen emits an ANSI clear before every screen.
	ClearScreen bool

	Logger l.Wrapper
}

// Loop shows the main menu until the user runs the visualizer, exits, or
// enters something it does not understand. End of input counts as exit.
func (m *Menu) Loop() error {
	logger := m.Logger
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	logger = logger.WithFields(l.StringField(l.ClsKey, "Menu"))

	sleep := m.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	r := bufio.NewReader(m.In)

	for {
		m.clear()
		fmt.Fprint(m.Out, MainScreen())

		line, err := readLine(r)
		if err != nil {
			return ignoreEOF(err)
		}
		m.clear()

		cmd := ParseCommand(line)
		logger.WithFields(l.StringField("input", line), l.IntField("command", int(cmd))).Debug("main menu")

		switch cmd {
		case CommandRun:
			if m.Run == nil {
				return nil
			}

			return m.Run()
		case CommandAbout:
			fmt.Fprint(m.Out, AboutScreen())

			line, err = readLine(r)
			if err != nil {
				return ignoreEOF(err)
			}
			m.clear()

			switch ParseAboutCommand(line) {
			case AboutBack:
				continue
			case AboutExit:
				return nil
			default:
				fmt.Fprintln(m.Out, aboutUnknownMessage)
				sleep(unknownDelay)

				return nil
			}
		case CommandExit:
			return nil
		case CommandEaster:
			fmt.Fprintln(m.Out, easterMessage)
			sleep(easterDelay)
		default:
			fmt.Fprintln(m.Out, unknownMessage)
			sleep(unknownDelay)

			return nil
		}
	}
}

func (m *Menu) clear() {
	if m.ClearScreen {
		fmt.Fprint(m.Out, clearScreen)
	}
}

// readLine returns io.EOF only when the input is closed with nothing left on it.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return fmt.Errorf("read menu input: %w", err)
}
