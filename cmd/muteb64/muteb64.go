// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// muteb64 is the tool to encode and decode unpadded base64 in Mute.
package main

import (
	"os"

	"github.com/mutecomm/b64/codecengine"
	"github.com/mutecomm/b64/log"
	"github.com/mutecomm/b64/release"
	"github.com/mutecomm/b64/util"
	"github.com/mutecomm/b64/util/interrupt"
	"github.com/urfave/cli"
)

func init() {
	cli.VersionPrinter = release.PrintVersion
}

func muteb64Main() error {
	defer log.Flush()

	// create codec engine
	ce := codecengine.New()
	defer ce.Close()

	// add interrupt handler
	interrupt.AddInterruptHandler(func() {
		log.Infof("gracefully shutting down...")
		ce.Close()
	})

	// start codec engine
	go func() {
		if err := ce.Start(os.Args); err != nil {
			interrupt.ShutdownChannel <- err
			return
		}
		interrupt.ShutdownChannel <- nil
	}()

	return <-interrupt.ShutdownChannel
}

func main() {
	// work around defer not working after os.Exit()
	if err := muteb64Main(); err != nil {
		util.Fatal(err)
	}
}
