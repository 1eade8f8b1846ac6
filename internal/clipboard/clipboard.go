// Package clipboard wraps the system clipboard behind an interface so
// copy actions can be tested without a display server.
package clipboard

import (
	"os/exec"
	"runtime"
)

// Clipboard writes text out to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// System implements Clipboard using the platform's clipboard command.
type System struct{}

// Copy pipes text into pbcopy or xclip.
func (System) Copy(text string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		cmd = exec.Command("xclip", "-selection", "clipboard")
	default:
		cmd = exec.Command("xclip", "-selection", "clipboard")
	}

	pipe, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	if _, err := pipe.Write([]byte(text)); err != nil {
		return err
	}
	if err := pipe.Close(); err != nil {
		return err
	}
	return cmd.Wait()
}

// Mock records copies in memory for tests. The zero value is usable.
type Mock struct {
	Copied []string
	Err    error
}

// Copy appends to Copied, or returns the injected error.
func (m *Mock) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Copied = append(m.Copied, text)
	return nil
}
