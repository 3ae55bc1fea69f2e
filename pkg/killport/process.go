package killport

import (
	"context"

	"github.com/engity-com/killport/pkg/sys"
)

const unknownProcessName = "Unknown"

func NewProcess(pid int32, name string) *Process {
	if name == "" {
		name = unknownProcessName
	}
	return &Process{
		pid:  pid,
		name: name,
	}
}

// Process is the native process variant of Killable.
type Process struct {
	pid  int32
	name string
}

func (this *Process) Pid() int32 {
	return this.pid
}

func (this *Process) Kind() Kind {
	return KindProcess
}

func (this *Process) Name() string {
	return this.name
}

func (this *Process) Kill(ctx context.Context, signal sys.Signal) error {
	return this.kill(ctx, signal)
}
