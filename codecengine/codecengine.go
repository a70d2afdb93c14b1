// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codecengine implements the command engine for muteb64.
package codecengine

import (
	"os"
	"strings"
	"sync"

	"github.com/mutecomm/b64/def/version"
	"github.com/mutecomm/b64/log"
	"github.com/mutecomm/b64/util"
	"github.com/urfave/cli"
)

// logPrefix identifies muteb64 in log lines.
const logPrefix = "b64"

// CodecEngine abstracts a muteb64 command engine.
type CodecEngine struct {
	prepared bool
	app      *cli.App

	mu    sync.Mutex
	files []*os.File // files opened by commands, closed by Close
}

func (ce *CodecEngine) prepare(c *cli.Context) error {
	if ce.prepared {
		return nil
	}
	// create log directory if it doesn't already exist
	if err := util.CreateDirs(c.GlobalString("logdir")); err != nil {
		return err
	}
	// initialize logging framework
	err := log.Init(c.GlobalString("loglevel"), logPrefix,
		c.GlobalString("logdir"), c.GlobalBool("logconsole"))
	if err != nil {
		return err
	}
	ce.prepared = true
	return nil
}

// before is the Before hook shared by all commands.
func (ce *CodecEngine) before(c *cli.Context) error {
	if len(c.Args()) > 0 {
		return log.Errorf("superfluous argument(s): %s", strings.Join(c.Args(), " "))
	}
	return ce.prepare(c)
}

// fileFlags are the flags of the encode and decode commands.
func fileFlags(what string) []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "in",
			Usage: "read input from file instead of input-fd",
		},
		cli.StringFlag{
			Name:  "out",
			Usage: "write " + what + " to file instead of output-fd",
		},
		cli.BoolFlag{
			Name:  "force",
			Usage: "overwrite existing output file",
		},
	}
}

// New returns a new muteb64 command engine.
func New() *CodecEngine {
	var ce CodecEngine
	ce.app = cli.NewApp()
	ce.app.Usage = "tool to encode and decode unpadded base64"
	ce.app.Version = version.Number
	ce.app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "input-fd",
			Value: 0,
			Usage: "input file descriptor",
		},
		cli.IntFlag{
			Name:  "output-fd",
			Value: 1,
			Usage: "output file descriptor",
		},
		cli.StringFlag{
			Name:  "loglevel",
			Value: "info",
			Usage: "logging level {trace, debug, info, warn, error, critical}",
		},
		cli.StringFlag{
			Name:  "logdir",
			Usage: "directory to log output",
		},
		cli.BoolFlag{
			Name:  "logconsole",
			Usage: "enable logging to console",
		},
	}
	ce.app.Commands = []cli.Command{
		{
			Name:   "encode",
			Usage:  "encode input as unpadded base64",
			Flags:  fileFlags("base64 text"),
			Before: ce.before,
			Action: func(c *cli.Context) error {
				return ce.encode(c)
			},
		},
		{
			Name:  "decode",
			Usage: "decode unpadded base64 input",
			Description: `
Decodes base64 text without padding. Trailing line breaks are ignored, every
other character outside of the base64 alphabet is an error.
`,
			Flags:  fileFlags("decoded bytes"),
			Before: ce.before,
			Action: func(c *cli.Context) error {
				return ce.decode(c)
			},
		},
		{
			Name:   "alphabet",
			Usage:  "show the base64 alphabet",
			Before: ce.before,
			Action: func(c *cli.Context) error {
				return ce.alphabet(c)
			},
		},
	}
	return &ce
}

// Start starts the muteb64 engine with the given command-line arguments.
func (ce *CodecEngine) Start(args []string) error {
	defer ce.Close()
	ce.app.Name = args[0]
	return ce.app.Run(args)
}

// Close closes all files opened by the engine. It is safe to call Close
// multiple times and from an interrupt handler.
func (ce *CodecEngine) Close() error {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	var err error
	for _, fp := range ce.files {
		if e := fp.Close(); e != nil && err == nil {
			err = e
		}
	}
	ce.files = nil
	return err
}
