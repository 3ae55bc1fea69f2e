//go:build darwin && !cgo

package killport

import (
	"context"

	"github.com/engity-com/killport/pkg/errors"
)

func NewResolver() Resolver {
	return cgoDisabledResolver{}
}

type cgoDisabledResolver struct{}

func (this cgoDisabledResolver) Resolve(context.Context, uint16) ([]Killable, error) {
	return nil, errors.System.Newf("port resolution on macOS requires a cgo enabled build")
}
