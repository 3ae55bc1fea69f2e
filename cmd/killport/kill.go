package main

import (
	"context"
	"fmt"
	"os"
	gosignal "os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/echocat/slf4g"

	"github.com/engity-com/killport/pkg/common"
	"github.com/engity-com/killport/pkg/docker"
	"github.com/engity-com/killport/pkg/killport"
	"github.com/engity-com/killport/pkg/net"
	"github.com/engity-com/killport/pkg/sys"
)

var (
	killPorts        net.PortRanges
	killSignal       sys.Signal
	killMode         killport.Mode
	killDryRun       bool
	killAbortOnError bool
)

var _ = registerCommand(func(app *kingpin.Application) {
	cmd := app.Command("kill", "Kills everything which is listening at the given ports.").
		Default().
		Action(func(*kingpin.ParseContext) error {
			return doKill()
		})
	cmd.Arg("ports", "Ports to act on. Either single ports or ranges like 8080-8090; can be repeated.").
		Required().
		SetValue(&killPorts)
	cmd.Flag("signal", "Signal to send to everything listening at the given ports. Default: "+sys.SIGKILL.String()).
		Short('s').
		PlaceHolder("<signal>").
		SetValue(&killSignal)
	cmd.Flag("mode", "Restricts what kind of entities are inspected. Default: "+killport.ModeAuto.String()).
		Short('m').
		PlaceHolder("<auto|process|container>").
		SetValue(&killMode)
	cmd.Flag("dry-run", "Only shows what would be killed without actually killing anything.").
		BoolVar(&killDryRun)
	cmd.Flag("abort-on-error", "Aborts at the first port which cannot be handled instead of continuing with the remaining ones.").
		BoolVar(&killAbortOnError)
})

func doKill() error {
	fail := func(err error) error {
		log.Error(err)
		os.Exit(1)
		return nil
	}

	conf := configurationRef.Get()

	signalToSend := conf.Signal
	if !killSignal.IsZero() {
		signalToSend = killSignal
	}
	mode := conf.Mode
	if killMode != killport.ModeAuto {
		mode = killMode
	}
	abortOnError := killAbortOnError || conf.AbortOnError

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	sigs := make(chan os.Signal, 1)
	defer close(sigs)
	gosignal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.With("signal", sig).Info("received signal")
		cancelFunc()
	}()

	svc := killport.NewService(killport.NewResolver(), nil)
	if mode != killport.ModeProcess {
		rt, err := docker.NewRuntime(&conf.Docker)
		if err != nil {
			return fail(err)
		}
		defer common.IgnoreCloseError(rt)
		svc.Runtime = rt
	}

	singular, _ := mode.Nouns()

	var failed bool
	for port, err := range killPorts.Iterate() {
		if err != nil {
			return fail(err)
		}
		targets, err := svc.KillServiceByPort(ctx, port, signalToSend, mode, killDryRun)
		if err != nil {
			if abortOnError {
				return fail(err)
			}
			log.WithError(err).With("port", port).Error("cannot handle port")
			failed = true
			continue
		}
		if len(targets) == 0 {
			fmt.Printf("No %s found using port %d\n", singular, port)
			continue
		}
		for _, target := range targets {
			if killDryRun {
				fmt.Printf("Would kill %v '%s' listening on port %d\n", target.Kind, target.Name, port)
			} else {
				fmt.Printf("Successfully killed %v '%s' listening on port %d\n", target.Kind, target.Name, port)
			}
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}
