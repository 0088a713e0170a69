package flags

import (
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

// NewApp creates the accum command line application with its metadata set.
// Flags, actions and commands are attached by the launcher.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "accum"
	app.Usage = "chunk accumulator benchmark"
	app.Version = "0.1.0"
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	return app
}
