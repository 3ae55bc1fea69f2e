package net

import (
	"bytes"
	"iter"
	"strings"
)

func NewPortRanges(in string) (result PortRanges, err error) {
	err = result.Set(in)
	return
}

type PortRanges []PortRange

func (this PortRanges) Iterate() iter.Seq2[uint16, error] {
	return func(yield func(uint16, error) bool) {
		for _, inner := range this {
			for v, err := range inner.Iterate() {
				if !yield(v, err) {
					return
				}
			}
		}
	}
}

func (this PortRanges) Strings() []string {
	strs := make([]string, len(this))
	for i, v := range this {
		strs[i] = v.String()
	}
	return strs
}

func (this PortRanges) String() string {
	return strings.Join(this.Strings(), ",")
}

func (this *PortRanges) UnmarshalText(in []byte) error {
	if len(in) == 0 {
		*this = PortRanges{}
		return nil
	}

	parts := bytes.Split(in, []byte(","))
	buf := make(PortRanges, len(parts))
	for i, v := range parts {
		if err := buf[i].UnmarshalText(v); err != nil {
			return err
		}
	}
	*this = buf
	return nil
}

// Set appends instead of replacing; it can therefore back repeatable
// command line arguments.
func (this *PortRanges) Set(in string) error {
	var buf PortRanges
	if err := buf.UnmarshalText([]byte(in)); err != nil {
		return err
	}
	*this = append(*this, buf...)
	return nil
}

func (this PortRanges) IsCumulative() bool {
	return true
}

func (this PortRanges) IsZero() bool {
	for _, v := range this {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

func (this PortRanges) Validate() error {
	for _, v := range this {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
