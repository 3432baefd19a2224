/*
Wireframe renders the scene described by a TOML configuration file as
black wireframe lines on a white window.

	wireframe [config.toml]

With headless_frames set in the configuration the frames are rendered
off-screen instead, and written as BMP files when frame_dir is set.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/wireframe/engine"
	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/testbed"
)

func main() {
	config := engine.DefaultApplicationConfig()
	if len(os.Args) > 1 {
		c, err := engine.LoadApplicationConfig(os.Args[1])
		if err != nil {
			core.LogFatal("could not load configuration: %s", err)
		}
		config = c
	}

	tb := testbed.NewTestGame(config)

	e, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal(err.Error())
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// ask the loop to stop on the next frame
	go func() {
		<-sigCh
		if err := tb.Events.Post(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT}); err != nil {
			os.Exit(1)
		}
	}()

	runErr := e.Run()
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogFatal(runErr.Error())
	}
}
