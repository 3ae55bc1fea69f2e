package docker

import (
	"context"

	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"

	"github.com/engity-com/killport/pkg/errors"
	"github.com/engity-com/killport/pkg/killport"
	"github.com/engity-com/killport/pkg/sys"
)

// Container is one running container bound to the requested port.
type Container struct {
	apiClient client.APIClient
	id        string
	name      string
}

func (this *Container) Kill(ctx context.Context, signal sys.Signal) error {
	if err := this.apiClient.ContainerKill(ctx, this.id, signal.String()); err != nil {
		if errdefs.IsNotFound(err) || errdefs.IsConflict(err) {
			// Already gone or already stopped.
			return nil
		}
		return errors.System.Newf("cannot kill container '%s': %w", this.name, err)
	}
	return nil
}

func (this *Container) Kind() killport.Kind {
	return killport.KindContainer
}

func (this *Container) Name() string {
	return this.name
}
