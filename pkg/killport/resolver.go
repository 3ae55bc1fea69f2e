package killport

import (
	"context"

	"github.com/shirou/gopsutil/v4/process"
)

// Resolver finds the native processes currently bound to a port. There is
// one implementation per OS family, selected at build time; an empty result
// is a valid outcome and means nothing is listening on the port.
type Resolver interface {
	Resolve(ctx context.Context, port uint16) ([]Killable, error)
}

// processName resolves a PID to a display name on a best effort basis. An
// empty result means the name could not be resolved; the caller degrades it,
// it never drops the candidate.
func processName(ctx context.Context, pid int32) string {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return ""
	}
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return ""
	}
	return name
}
