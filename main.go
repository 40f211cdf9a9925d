/*
This is an example of application that will use the
engine package to render a wireframe scene
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/softrast/engine"
	"github.com/spaghettifunk/softrast/engine/core"
	"github.com/spaghettifunk/softrast/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	headless := flag.Bool("headless", false, "render without a window")
	frames := flag.Int("frames", -1, "frames to render in headless mode")
	out := flag.String("out", "", "headless output pattern, e.g. out/frame-%04d.png")
	flag.Parse()

	config := engine.DefaultApplicationConfig()
	if *configPath != "" {
		c, err := engine.LoadApplicationConfig(*configPath)
		if err != nil {
			core.LogFatal("failed to load config: %s", err)
		}
		config = c
	}
	if *headless {
		config.Headless.Enabled = true
	}
	if *frames >= 0 {
		config.Headless.Frames = *frames
	}
	if *out != "" {
		config.Headless.Output = *out
	}

	tb := testbed.NewTestGame(config)

	engine, err := engine.New(tb.Game)
	if err != nil {
		panic(err)
	}

	if err := engine.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// the quit request is queued and handled by the next frame
	go func() {
		<-sigCh
		core.EventPost(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
	}()

	// run engine
	if err := engine.Run(); err != nil {
		_ = engine.Shutdown()
		panic(err)
	}
	if err := engine.Shutdown(); err != nil {
		panic(err)
	}
}
