package release

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"
)

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	app := cli.NewApp()
	app.Name = "muteb64"
	app.Version = "0.1.0"
	app.Writer = &buf
	PrintVersion(cli.NewContext(app, nil, nil))
	assert.Equal(t, "muteb64 version 0.1.0\ncommit unknown\nDate:   unknown\n", buf.String())
}
