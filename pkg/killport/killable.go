package killport

import (
	"context"
	"strconv"

	"github.com/engity-com/killport/pkg/sys"
)

// Killable is something currently bound to a port that can be terminated:
// either a native process or a container. Kind and Name are fixed at
// construction and never change afterwards.
type Killable interface {
	// Kill delivers the given signal and blocks until the underlying OS or
	// runtime call reports a definitive result. A target that is already
	// gone is success, not an error.
	Kill(ctx context.Context, signal sys.Signal) error
	Kind() Kind
	Name() string
}

// Target records an entity the engine acted upon (or would act upon under
// dry-run).
type Target struct {
	Kind Kind
	Name string
}

type Kind uint8

const (
	KindProcess Kind = iota
	KindContainer
)

func (this Kind) String() string {
	v, ok := kindToStr[this]
	if !ok {
		return "unknown-" + strconv.FormatUint(uint64(this), 10)
	}
	return v
}

func (this Kind) MarshalText() ([]byte, error) {
	return []byte(this.String()), nil
}

var (
	kindToStr = map[Kind]string{
		KindProcess:   "process",
		KindContainer: "container",
	}
)
