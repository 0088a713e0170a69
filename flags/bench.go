package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// BenchFlags returns the flags describing a benchmark run.
func BenchFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "store",
			Usage: "Backing store of the accumulator (deque|ring|slice|all)",
			Value: "deque",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames pushed through the accumulator",
			Value: 100000,
		},
		cli.IntFlag{
			Name:  "payload.max",
			Usage: "Maximum frame payload size in bytes",
			Value: 4096,
		},
		cli.IntFlag{
			Name:  "read.min",
			Usage: "Minimum size of a single read from the stream",
			Value: 1,
		},
		cli.IntFlag{
			Name:  "read.max",
			Usage: "Maximum size of a single read from the stream",
			Value: 16384,
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "Seed of the stream generator",
			Value: 1,
		},
	}
}
