// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codecengine

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mutecomm/b64/encode/base64"
	"github.com/mutecomm/b64/log"
	"github.com/mutecomm/b64/util"
	"github.com/urfave/cli"
)

func (ce *CodecEngine) track(fp *os.File) {
	ce.mu.Lock()
	ce.files = append(ce.files, fp)
	ce.mu.Unlock()
}

// untrack closes fp and removes it from the tracked files.
func (ce *CodecEngine) untrack(fp *os.File) error {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	for i, f := range ce.files {
		if f == fp {
			ce.files = append(ce.files[:i], ce.files[i+1:]...)
			if err := fp.Close(); err != nil {
				return log.Error(err)
			}
			return nil
		}
	}
	return nil
}

// input returns the file given with --in or the input file descriptor.
func (ce *CodecEngine) input(c *cli.Context) (*os.File, error) {
	if name := c.String("in"); name != "" {
		log.Infof("read input from %s", name)
		fp, err := os.Open(name)
		if err != nil {
			return nil, log.Error(err)
		}
		ce.track(fp)
		return fp, nil
	}
	fd := c.GlobalInt("input-fd")
	log.Infof("read input from fd %d", fd)
	return os.NewFile(uintptr(fd), "input-fd"), nil
}

// output returns the file given with --out or the output file descriptor.
// An existing file is only overwritten with --force.
func (ce *CodecEngine) output(c *cli.Context) (*os.File, error) {
	if name := c.String("out"); name != "" {
		if !c.Bool("force") {
			if err := util.CheckNotExists(name); err != nil {
				return nil, err
			}
		}
		log.Infof("write output to %s", name)
		fp, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return nil, log.Error(err)
		}
		ce.track(fp)
		return fp, nil
	}
	fd := c.GlobalInt("output-fd")
	log.Infof("write output to fd %d", fd)
	return os.NewFile(uintptr(fd), "output-fd"), nil
}

func (ce *CodecEngine) readAll(c *cli.Context) ([]byte, error) {
	in, err := ce.input(c)
	if err != nil {
		return nil, err
	}
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, log.Error(err)
	}
	if err := ce.untrack(in); err != nil {
		return nil, err
	}
	return data, nil
}

func (ce *CodecEngine) write(c *cli.Context, data []byte, newline bool) error {
	out, err := ce.output(c)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		return log.Error(err)
	}
	if newline && util.IsTerminal(out) {
		if _, err := fmt.Fprintln(out); err != nil {
			return log.Error(err)
		}
	}
	return ce.untrack(out)
}

func (ce *CodecEngine) encode(c *cli.Context) error {
	data, err := ce.readAll(c)
	if err != nil {
		return err
	}
	enc := base64.Encode(data)
	log.Infof("codecengine: %d bytes encoded to %d characters", len(data), len(enc))
	return ce.write(c, []byte(enc), true)
}

func (ce *CodecEngine) decode(c *cli.Context) error {
	data, err := ce.readAll(c)
	if err != nil {
		return err
	}
	dec, err := base64.Decode(strings.TrimRight(string(data), "\r\n"))
	if err != nil {
		return err
	}
	log.Infof("codecengine: %d bytes decoded", len(dec))
	return ce.write(c, dec, false)
}

func (ce *CodecEngine) alphabet(c *cli.Context) error {
	return ce.write(c, []byte(base64.Alphabet), true)
}
