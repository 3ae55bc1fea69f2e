package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/engity-com/killport/pkg/common"
)

var (
	title    = "Engity's Killport"
	version  = "development"
	revision = "HEAD"
	buildAt  = ""
	vendor   = "unknown"

	buildAtV time.Time
)

var (
	long = true
)

var _ = registerCommand(func(app *kingpin.Application) {
	cmd := app.Command("version", "Show version details of this executable.").
		Action(func(*kingpin.ParseContext) error {
			return doVersion()
		})
	cmd.Flag("long", "Show the full details instead of one line. Default: "+fmt.Sprint(long)).
		PlaceHolder("<true|false>").
		BoolVar(&long)

	app.Flag("version", "Show version details of this executable.").
		Action(func(*kingpin.ParseContext) error {
			defer os.Exit(0)
			return doVersion()
		}).
		Bool()
})

func doVersion() error {
	f := common.VersionFormatShort
	if long {
		f = common.VersionFormatLong
	}
	fmt.Println(common.FormatVersion(versionV, f))
	return nil
}

func init() {
	if buildAt == "" {
		buildAtV = time.Now()
	} else if v, err := time.Parse(time.RFC3339, buildAt); err != nil {
		panic(fmt.Errorf("illegal main.buildAt value (%q): %w", buildAt, err))
	} else {
		buildAtV = v
	}
}

var versionV = &versionT{}

type versionT struct{}

func (this versionT) Title() string {
	return title
}

func (this versionT) Version() string {
	return version
}

func (this versionT) Revision() string {
	return revision
}

func (this versionT) BuildAt() time.Time {
	return buildAtV
}

func (this versionT) Vendor() string {
	return vendor
}

func (this versionT) GoVersion() string {
	return runtime.Version()
}

func (this versionT) Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
