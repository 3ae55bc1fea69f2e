package configuration

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/engity-com/killport/pkg/common"
	"github.com/engity-com/killport/pkg/errors"
	"github.com/engity-com/killport/pkg/killport"
	"github.com/engity-com/killport/pkg/sys"
)

type Configuration struct {
	// Signal is sent to every matching process or container if nothing else
	// was requested on the command line.
	Signal sys.Signal `yaml:"signal,omitempty"`

	// Mode restricts what kind of entities are inspected at all.
	Mode killport.Mode `yaml:"mode,omitempty"`

	// AbortOnError stops at the first port that cannot be handled instead of
	// continuing with the remaining ones.
	AbortOnError bool `yaml:"abortOnError,omitempty"`

	Docker Docker `yaml:"docker,omitempty"`
}

func (this *Configuration) SetDefaults() error {
	return setDefaults(this,
		fixedDefault("signal", func(v *Configuration) *sys.Signal { return &v.Signal }, sys.SIGKILL),
		fixedDefault("mode", func(v *Configuration) *killport.Mode { return &v.Mode }, killport.ModeAuto),
		fixedDefault("abortOnError", func(v *Configuration) *bool { return &v.AbortOnError }, false),
		func(v *Configuration) (string, defaulter) { return "docker", &v.Docker },
	)
}

func (this *Configuration) Trim() error {
	return trim(this,
		noopTrim[Configuration]("signal"),
		noopTrim[Configuration]("mode"),
		noopTrim[Configuration]("abortOnError"),
		func(v *Configuration) (string, trimmer) { return "docker", &v.Docker },
	)
}

func (this *Configuration) Validate() error {
	return validate(this,
		noopValidate[Configuration]("signal"),
		noopValidate[Configuration]("mode"),
		func(v *Configuration) (string, validator) { return "docker", &v.Docker },
	)
}

func (this *Configuration) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(this, node, func(target *Configuration, node *yaml.Node) error {
		type raw Configuration
		return node.Decode((*raw)(target))
	})
}

func (this *Configuration) LoadFromFile(fn string) error {
	f, err := os.Open(fn)
	if sys.IsNotExist(err) {
		return errors.Config.Newf("configuration file %q does not exist", fn)
	}
	if err != nil {
		return errors.Config.Newf("cannot open configuration file %q: %w", fn, err)
	}
	defer common.IgnoreCloseError(f)

	return this.LoadFromYaml(f, fn)
}

func (this *Configuration) LoadFromYaml(reader io.Reader, fn string) error {
	if fn == "" {
		fn = "<anonymous>"
	}

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	var buf Configuration
	if err := decoder.Decode(&buf); err != nil {
		return errors.Config.Newf("cannot parse configuration file %q: %w", fn, err)
	}

	if err := buf.Validate(); err != nil {
		return errors.Config.Newf("configuration file %q contains problems: %w", fn, err)
	}

	*this = buf
	return nil
}

func (this Configuration) IsEqualTo(other any) bool {
	if other == nil {
		return false
	}
	switch v := other.(type) {
	case Configuration:
		return this.isEqualTo(&v)
	case *Configuration:
		return this.isEqualTo(v)
	default:
		return false
	}
}

func (this Configuration) isEqualTo(other *Configuration) bool {
	return this.Signal.IsEqualTo(other.Signal) &&
		this.Mode == other.Mode &&
		this.AbortOnError == other.AbortOnError &&
		isEqual(&this.Docker, &other.Docker)
}
