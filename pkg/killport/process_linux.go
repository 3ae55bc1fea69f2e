//go:build linux

package killport

import (
	"context"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/engity-com/killport/pkg/errors"
	"github.com/engity-com/killport/pkg/sys"
)

// On Linux the whole descendant tree is terminated, leaves first, so that a
// parent cannot respawn a child which still holds the inherited socket.
func (this *Process) kill(ctx context.Context, signal sys.Signal) error {
	descendants, err := collectDescendants(ctx, this.pid)
	if err != nil {
		return err
	}
	for _, pid := range descendants {
		if err := signalPid(pid, this.name, signal); err != nil {
			return err
		}
	}
	return signalPid(this.pid, this.name, signal)
}

// collectDescendants returns every transitive child of pid, deepest first,
// derived from a single snapshot of the process table.
func collectDescendants(ctx context.Context, pid int32) ([]int32, error) {
	snapshot, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, errors.System.Newf("cannot snapshot the process table: %w", err)
	}

	children := make(map[int32][]int32, len(snapshot))
	for _, p := range snapshot {
		ppid, err := p.PpidWithContext(ctx)
		if err != nil {
			// Exited between snapshot and inspection.
			continue
		}
		children[ppid] = append(children[ppid], p.Pid)
	}

	var result []int32
	var walk func(of int32)
	walk = func(of int32) {
		for _, child := range children[of] {
			walk(child)
			result = append(result, child)
		}
	}
	walk(pid)
	return result, nil
}
