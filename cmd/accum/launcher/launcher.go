package launcher

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-accumulator/bench"
	"github.com/rony4d/go-accumulator/flags"
)

var app = flags.NewApp()

var storesCommand = cli.Command{
	Name:   "stores",
	Usage:  "List the accumulator backing stores",
	Action: storesAction,
}

var storeDescriptions = map[string]string{
	bench.StoreDeque: "gammazero/deque ring buffer, power-of-two growth",
	bench.StoreRing:  "in-tree ring buffer, grows and shrinks by halves",
	bench.StoreSlice: "contiguous slice with headroom at both ends, never shrinks",
}

func init() {
	app.Flags = append(app.Flags, flags.CommonFlags()...)
	app.Flags = append(app.Flags, flags.BenchFlags()...)
	app.Action = benchAction
	app.Commands = []cli.Command{storesCommand}
}

// Launch parses args and runs the selected benchmark or command.
func Launch(args []string) error {
	return app.Run(args)
}

func benchAction(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Logging, ctx.App.ErrWriter)
	if err != nil {
		return err
	}
	if cfg.Metrics {
		metrics.Enabled = true
	}

	reg := metrics.NewRegistry()
	for _, name := range cfg.Stores() {
		run := cfg.Bench
		run.Store = name

		res, err := bench.Run(run, log, reg)
		if err != nil {
			log.WithError(err).WithField("store", name).Error("Benchmark failed")
			return err
		}
		fmt.Fprintln(ctx.App.Writer, res)
	}
	if cfg.Metrics {
		reportMeters(log, reg)
	}
	return nil
}

// reportMeters logs the totals of every meter in reg and stops them.
func reportMeters(log logrus.FieldLogger, reg metrics.Registry) {
	reg.Each(func(name string, i interface{}) {
		m, ok := i.(metrics.Meter)
		if !ok {
			return
		}
		s := m.Snapshot()
		log.WithFields(logrus.Fields{
			"meter": name,
			"count": s.Count(),
			"rate":  fmt.Sprintf("%.1f/s", s.RateMean()),
		}).Info("Meter totals")
		m.Stop()
	})
}

func storesAction(ctx *cli.Context) error {
	names := append([]string(nil), bench.StoreNames...)
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(ctx.App.Writer, "%-6s %s\n", name, storeDescriptions[name])
	}
	return nil
}
