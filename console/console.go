// Package console puts the controlling terminal into raw mode so a running
// intcode program can be driven one keystroke at a time, the way an ASCII
// mode machine expects its input.
package console

import (
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

type Console struct {
	originalTerminalConfig unix.Termios
	out                    io.Writer
	keys                   chan byte
	done                   chan struct{}
}

// Open switches stdin to raw (non-canonical, no-echo) mode and starts the
// keyboard reader. Close must be called to restore the terminal.
func Open() (*Console, error) {
	c := &Console{
		out:  os.Stdout,
		keys: make(chan byte, 1),
		done: make(chan struct{}),
	}

	if err := termios.Tcgetattr(os.Stdin.Fd(), &c.originalTerminalConfig); err != nil {
		return nil, err
	}
	newTermios := c.originalTerminalConfig
	newTermios.Lflag &^= unix.ICANON | unix.ECHO
	if err := termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &newTermios); err != nil {
		return nil, err
	}

	go c.pollKeyboard()

	return c, nil
}

// Close restores the original terminal configuration.
func (c *Console) Close() error {
	close(c.done)
	return termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &c.originalTerminalConfig)
}

// ReadKey blocks until one keystroke is available. The second return is
// false once the console has been closed.
func (c *Console) ReadKey() (byte, bool) {
	select {
	case b := <-c.keys:
		return b, true
	case <-c.done:
		return 0, false
	}
}

// Write passes program output through to the terminal.
func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *Console) pollKeyboard() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			select {
			case <-c.done:
				return
			default:
				continue
			}
		}

		select {
		case c.keys <- buf[0]:
		case <-c.done:
			return
		}
	}
}
