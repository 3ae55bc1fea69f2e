package docker

import (
	"context"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	log "github.com/echocat/slf4g"

	"github.com/engity-com/killport/pkg/configuration"
	"github.com/engity-com/killport/pkg/errors"
	"github.com/engity-com/killport/pkg/killport"
)

// minimumServerVersion is the oldest daemon this was actually exercised
// against. Older daemons are still contacted; they only trigger a warning.
var minimumServerVersion = semver.MustParse("20.10.0")

func NewRuntime(conf *configuration.Docker) (*Runtime, error) {
	fail := func(err error) (*Runtime, error) {
		return nil, err
	}
	failf := func(msg string, args ...any) (*Runtime, error) {
		return fail(errors.Config.Newf(msg, args...))
	}

	if conf == nil {
		return failf("nil configuration")
	}

	apiClient, err := newApiClient(conf)
	if err != nil {
		return fail(err)
	}

	return &Runtime{
		conf:      conf,
		apiClient: apiClient,
	}, nil
}

// Runtime talks to a Docker daemon to find and kill containers which
// publish a requested port.
type Runtime struct {
	conf      *configuration.Docker
	apiClient client.APIClient
}

// Available reports whether a daemon answers at all. An unreachable daemon
// is a regular condition on hosts without Docker and therefore only logged
// with debug severity.
func (this *Runtime) Available(ctx context.Context) bool {
	si, err := this.apiClient.ServerVersion(ctx)
	if err != nil {
		this.logger().
			WithError(err).
			Debug("docker daemon is not reachable; containers will not be inspected")
		return false
	}

	if v, err := semver.NewVersion(si.Version); err == nil && v.LessThan(minimumServerVersion) {
		this.logger().
			With("version", si.Version).
			With("minimum", minimumServerVersion).
			Warn("docker daemon is older than the supported minimum; continuing anyway")
	}

	return true
}

// FindTargetContainers returns one killable per running container which
// publishes port on the host side.
func (this *Runtime) FindTargetContainers(ctx context.Context, port uint16) ([]killport.Killable, error) {
	fail := func(err error) ([]killport.Killable, error) {
		return nil, err
	}

	list, err := this.apiClient.ContainerList(ctx, container.ListOptions{
		Filters: filters.NewArgs(
			filters.Arg("publish", strconv.FormatUint(uint64(port), 10)),
			filters.Arg("status", "running"),
		),
	})
	if err != nil {
		return fail(errors.System.Newf("cannot list containers publishing port %d: %w", port, err))
	}

	result := make([]killport.Killable, 0, len(list))
	for _, candidate := range list {
		result = append(result, &Container{
			apiClient: this.apiClient,
			id:        candidate.ID,
			name:      containerDisplayName(candidate),
		})
	}
	return result, nil
}

func (this *Runtime) Close() error {
	return this.apiClient.Close()
}

func (this *Runtime) logger() log.Logger {
	return log.GetLogger("docker")
}

func containerDisplayName(candidate container.Summary) string {
	for _, name := range candidate.Names {
		if name := strings.TrimPrefix(name, "/"); name != "" {
			return name
		}
	}
	if len(candidate.ID) >= 12 {
		return candidate.ID[:12]
	}
	return candidate.ID
}
