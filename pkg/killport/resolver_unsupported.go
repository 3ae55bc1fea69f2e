//go:build !linux && !darwin && !windows

package killport

import (
	"context"
	"runtime"

	"github.com/engity-com/killport/pkg/errors"
)

func NewResolver() Resolver {
	return unsupportedResolver{}
}

type unsupportedResolver struct{}

func (this unsupportedResolver) Resolve(context.Context, uint16) ([]Killable, error) {
	return nil, errors.System.Newf("unsupported platform: %s", runtime.GOOS)
}
