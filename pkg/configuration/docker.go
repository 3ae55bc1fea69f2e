package configuration

import (
	"gopkg.in/yaml.v3"
)

// Docker holds how the Docker daemon should be contacted. Every empty
// field falls back to the corresponding environment driven default of the
// Docker client itself.
type Docker struct {
	Host       string `yaml:"host,omitempty"`
	ApiVersion string `yaml:"apiVersion,omitempty"`
	CertPath   string `yaml:"certPath,omitempty"`
	TlsVerify  bool   `yaml:"tlsVerify,omitempty"`
}

func (this *Docker) SetDefaults() error {
	return setDefaults(this,
		fixedDefault("host", func(v *Docker) *string { return &v.Host }, ""),
		fixedDefault("apiVersion", func(v *Docker) *string { return &v.ApiVersion }, ""),
		fixedDefault("certPath", func(v *Docker) *string { return &v.CertPath }, ""),
		fixedDefault("tlsVerify", func(v *Docker) *bool { return &v.TlsVerify }, true),
	)
}

func (this *Docker) Trim() error {
	return trim(this,
		stringTrim("host", func(v *Docker) *string { return &v.Host }),
		stringTrim("apiVersion", func(v *Docker) *string { return &v.ApiVersion }),
		stringTrim("certPath", func(v *Docker) *string { return &v.CertPath }),
		noopTrim[Docker]("tlsVerify"),
	)
}

func (this *Docker) Validate() error {
	return validate(this,
		noopValidate[Docker]("host"),
		noopValidate[Docker]("apiVersion"),
		noopValidate[Docker]("certPath"),
		noopValidate[Docker]("tlsVerify"),
	)
}

func (this *Docker) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(this, node, func(target *Docker, node *yaml.Node) error {
		type raw Docker
		return node.Decode((*raw)(target))
	})
}

func (this Docker) IsEqualTo(other any) bool {
	if other == nil {
		return false
	}
	switch v := other.(type) {
	case Docker:
		return this.isEqualTo(&v)
	case *Docker:
		return this.isEqualTo(v)
	default:
		return false
	}
}

func (this Docker) isEqualTo(other *Docker) bool {
	return this.Host == other.Host &&
		this.ApiVersion == other.ApiVersion &&
		this.CertPath == other.CertPath &&
		this.TlsVerify == other.TlsVerify
}
