package killport

import (
	"context"
	"strings"

	log "github.com/echocat/slf4g"

	"github.com/engity-com/killport/pkg/errors"
	"github.com/engity-com/killport/pkg/sys"
)

// ContainerRuntime is the engine's view onto the container runtime. It may
// be entirely absent (see Available); that narrows the effective mode to
// process-only and is never an error.
type ContainerRuntime interface {
	Available(ctx context.Context) bool
	FindTargetContainers(ctx context.Context, port uint16) ([]Killable, error)
}

// runtimeProcessMarker identifies host-side processes which belong to the
// container runtime itself. Such a process is not an independent owner of a
// port that is really a container's published port.
const runtimeProcessMarker = "docker"

func NewService(resolver Resolver, runtime ContainerRuntime) *Service {
	return &Service{
		Resolver: resolver,
		Runtime:  runtime,
	}
}

// Service resolves which entities own a port and terminates them.
type Service struct {
	Resolver Resolver
	// Runtime may be nil if no container runtime integration exists at all.
	Runtime ContainerRuntime
}

// FindTargetKillables gathers all candidates bound to port, native processes
// first, then containers, as far as mode permits.
func (this *Service) FindTargetKillables(ctx context.Context, port uint16, mode Mode) ([]Killable, error) {
	runtimePresent := mode != ModeProcess && this.Runtime != nil && this.Runtime.Available(ctx)

	var targets []Killable

	if mode != ModeContainer {
		candidates, err := this.Resolver.Resolve(ctx, port)
		if err != nil {
			return nil, err
		}
		for _, candidate := range candidates {
			if runtimePresent && strings.Contains(strings.ToLower(candidate.Name()), runtimeProcessMarker) {
				this.logger().
					With("port", port).
					With("process", candidate.Name()).
					Debug("skipping the container runtime's own process")
				continue
			}
			targets = append(targets, candidate)
		}
	}

	if mode != ModeProcess && runtimePresent {
		candidates, err := this.Runtime.FindTargetContainers(ctx, port)
		if err != nil {
			return nil, err
		}
		targets = append(targets, candidates...)
	}

	return targets, nil
}

// KillServiceByPort resolves port's owners and either terminates them or,
// under dryRun, only reports them. The first termination failure aborts the
// whole port. An empty result means nothing owns the port; that is not an
// error.
func (this *Service) KillServiceByPort(ctx context.Context, port uint16, signal sys.Signal, mode Mode, dryRun bool) ([]Target, error) {
	targets, err := this.FindTargetKillables(ctx, port, mode)
	if err != nil {
		return nil, err
	}

	results := make([]Target, 0, len(targets))
	for _, target := range targets {
		if dryRun {
			results = append(results, Target{target.Kind(), target.Name()})
			continue
		}

		this.logger().
			With("port", port).
			With(target.Kind().String(), target.Name()).
			With("signal", signal).
			Debug("killing")

		if err := target.Kill(ctx, signal); err != nil {
			return nil, errors.System.Newf("cannot kill %v '%s' listening on port %d: %w", target.Kind(), target.Name(), port, err)
		}
		results = append(results, Target{target.Kind(), target.Name()})
	}

	return results, nil
}

func (this *Service) logger() log.Logger {
	return log.GetLogger("killport")
}
