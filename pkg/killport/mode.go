package killport

import (
	"strconv"
	"strings"

	"github.com/engity-com/killport/pkg/errors"
)

// Mode restricts which classes of entities a resolution targets.
type Mode uint8

const (
	// ModeAuto targets native processes and containers.
	ModeAuto Mode = iota
	// ModeProcess targets native processes only.
	ModeProcess
	// ModeContainer targets containers only.
	ModeContainer
)

func (this Mode) String() string {
	v, ok := modeToStr[this]
	if !ok {
		return "unknown-" + strconv.FormatUint(uint64(this), 10)
	}
	return v
}

func (this *Mode) Set(plain string) error {
	candidate, ok := strToMode[strings.ToLower(plain)]
	if !ok {
		return errors.User.Newf("illegal mode: %q", plain)
	}
	*this = candidate
	return nil
}

func (this Mode) MarshalText() ([]byte, error) {
	return []byte(this.String()), nil
}

func (this *Mode) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

// Nouns returns the singular and plural words used to describe this mode's
// targets to the user.
func (this Mode) Nouns() (singular, plural string) {
	switch this {
	case ModeProcess:
		return "process", "processes"
	case ModeContainer:
		return "container", "containers"
	default:
		return "service", "services"
	}
}

var (
	strToMode = map[string]Mode{
		"auto":      ModeAuto,
		"process":   ModeProcess,
		"container": ModeContainer,
	}
	modeToStr = func(map[string]Mode) map[Mode]string {
		result := make(map[Mode]string, len(strToMode))
		for k, v := range strToMode {
			result[v] = k
		}
		return result
	}(strToMode)
)
