package source

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/creack/pty"

	"github.com/arloliu/go-charstream/stream"
)

// Command is a byte source reading the terminal output of a child process.
//
// The process runs on a pseudo-terminal, so programs that only talk to a tty
// (modems, serial consoles, interactive tools) behave as they would for a
// user.
type Command struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	reader *Reader
}

var (
	_ stream.Source = (*Command)(nil)
	_ stream.Waiter = (*Command)(nil)
)

// StartCommand starts name with args on a new pseudo-terminal.
func StartCommand(ctx context.Context, name string, args ...string) (*Command, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, err
	}
	_ = pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80})

	return &Command{
		cmd:    cmd,
		ptmx:   ptmx,
		reader: NewReader(ptyReader{ptmx}),
	}, nil
}

// Available implements stream.Source.
func (c *Command) Available() int { return c.reader.Available() }

// TryRead implements stream.Source.
func (c *Command) TryRead() (byte, bool) { return c.reader.TryRead() }

// TryPeek implements stream.Source.
func (c *Command) TryPeek() (byte, bool) { return c.reader.TryPeek() }

// WaitAvailable implements stream.Waiter.
func (c *Command) WaitAvailable(timeout time.Duration) bool {
	return c.reader.WaitAvailable(timeout)
}

// Write sends p to the process input.
func (c *Command) Write(p []byte) (int, error) {
	return c.ptmx.Write(p)
}

// Done is closed once the process output has ended.
func (c *Command) Done() <-chan struct{} { return c.reader.Done() }

// Err returns the error that ended reading the output, or nil.
func (c *Command) Err() error { return c.reader.Err() }

// Wait waits for the process to exit and returns its exit error.
func (c *Command) Wait() error {
	return c.cmd.Wait()
}

// Close kills the process if it was not waited for and releases the
// terminal. It must not be called concurrently with Wait.
func (c *Command) Close() error {
	err := c.reader.Close()
	if c.cmd.ProcessState == nil && c.cmd.Process != nil {
		_ = c.cmd.Process.Kill()
		_ = c.cmd.Wait()
	}

	return err
}

// ptyReader reports the EIO a terminal returns once the child side is gone
// as io.EOF.
type ptyReader struct {
	f *os.File
}

func (r ptyReader) Read(p []byte) (int, error) {
	n, err := r.f.Read(p)
	if errors.Is(err, syscall.EIO) {
		err = io.EOF
	}

	return n, err
}

func (r ptyReader) Close() error { return r.f.Close() }
