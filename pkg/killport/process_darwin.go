//go:build darwin

package killport

import (
	"context"

	"github.com/engity-com/killport/pkg/sys"
)

// On macOS only the directly matched process is signaled; libproc already
// reports every process owning the socket, so there is no tree to walk.
func (this *Process) kill(_ context.Context, signal sys.Signal) error {
	return signalPid(this.pid, this.name, signal)
}
