//go:build unix

package killport

import (
	"os"
	"syscall"

	"github.com/engity-com/killport/pkg/errors"
	"github.com/engity-com/killport/pkg/sys"
)

func signalPid(pid int32, name string, signal sys.Signal) error {
	p, err := os.FindProcess(int(pid))
	if err != nil {
		return err
	}
	err = signal.SendToProcess(p)
	if errors.Is(err, os.ErrProcessDone) || errors.Is(err, syscall.ESRCH) {
		// Already gone; the port is free, which is the whole point.
		return nil
	}
	if errors.Is(err, syscall.EPERM) {
		return errors.Permission.Newf("cannot send %v to process '%s' with PID %d: %w", signal, name, pid, err)
	}
	if err != nil {
		return errors.System.Newf("cannot send %v to process '%s' with PID %d: %w", signal, name, pid, err)
	}
	return nil
}
