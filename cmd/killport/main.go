package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"
	"github.com/echocat/slf4g/native"

	"github.com/engity-com/killport/pkg/configuration"
	"github.com/engity-com/killport/pkg/logging"
)

var (
	configurationRef = configuration.MustNewConfigurationRef("/etc/engity/killport/configuration.yaml")

	commandRegistrations []func(*kingpin.Application)
)

func registerCommand(registration func(*kingpin.Application)) struct{} {
	commandRegistrations = append(commandRegistrations, registration)
	return struct{}{}
}

func main() {
	app := kingpin.New("killport", "Kills every process and container which is listening at the given ports.").
		UsageWriter(os.Stderr).
		ErrorWriter(os.Stderr).
		Terminate(func(i int) {
			os.Exit(i)
		})

	logging.ConfigureLoggingForFlags(app, native.DefaultProvider)

	app.Flag("configuration", "Configuration which should be used. Default: "+configurationRef.String()).
		Short('c').
		PlaceHolder("<file>").
		SetValue(&configurationRef)

	for _, registration := range commandRegistrations {
		registration(app)
	}

	if _, err := app.Parse(os.Args[1:]); err != nil {
		log.WithError(err).Error("execution failed")
		os.Exit(1)
	}
}
