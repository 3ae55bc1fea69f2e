//go:build windows

package killport

import (
	"context"

	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/windows"

	"github.com/engity-com/killport/pkg/errors"
	"github.com/engity-com/killport/pkg/sys"
)

// Windows cannot deliver arbitrary signals; SIGTERM maps to TerminateProcess
// via gopsutil's Terminate, everything else degrades to a hard kill.
func (this *Process) kill(ctx context.Context, signal sys.Signal) error {
	p, err := process.NewProcessWithContext(ctx, this.pid)
	if isProcessGone(err) {
		return nil
	}
	if err != nil {
		return errors.System.Newf("cannot open process '%s' with PID %d: %w", this.name, this.pid, err)
	}

	switch signal {
	case sys.SIGTERM:
		err = p.TerminateWithContext(ctx)
	default:
		err = p.KillWithContext(ctx)
	}
	if isProcessGone(err) {
		return nil
	}
	if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		return errors.Permission.Newf("cannot kill process '%s' with PID %d: %w", this.name, this.pid, err)
	}
	if err != nil {
		return errors.System.Newf("cannot kill process '%s' with PID %d: %w", this.name, this.pid, err)
	}
	return nil
}

func isProcessGone(err error) bool {
	return errors.Is(err, windows.ERROR_INVALID_PARAMETER) ||
		errors.Is(err, process.ErrorProcessNotRunning)
}
