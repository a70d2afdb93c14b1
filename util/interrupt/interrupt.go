// Copyright (c) 2013 Conformal Systems LLC.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package interrupt handles SIGINT and SIGTERM for the Mute base64 tools.
package interrupt

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mutecomm/b64/log"
)

// ShutdownChannel receives the result of a command. A nil error is sent on
// interrupt after all registered handlers ran.
var ShutdownChannel = make(chan error)

var (
	once       sync.Once
	signals    chan os.Signal
	addHandler = make(chan func())
)

// handle runs the registered callbacks on the first signal and reports
// the shutdown on ShutdownChannel.
func handle() {
	var callbacks []func()
	for {
		select {
		case sig := <-signals:
			log.Infof("received %s, shutting down...", sig)
			for _, callback := range callbacks {
				callback()
			}
			ShutdownChannel <- nil
			return
		case handler := <-addHandler:
			callbacks = append(callbacks, handler)
		}
	}
}

// AddInterruptHandler adds a handler to call when SIGINT (Ctrl+C) or
// SIGTERM is received.
func AddInterruptHandler(handler func()) {
	once.Do(func() {
		signals = make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		go handle()
	})
	addHandler <- handler
}
