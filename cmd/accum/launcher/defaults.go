package launcher

// Defaults bundles the baseline configuration values the launcher uses
// before the config file and flags override them.
type Defaults struct {
	Bench   BenchDefaults
	Logging LoggingDefaults
	Metrics MetricsDefaults
}

// BenchDefaults shapes the generated stream.
type BenchDefaults struct {
	Store      string // backing store name, or "all" to run every store in turn
	Frames     int    // frames pushed through the accumulator per run
	MaxPayload int    // upper bound of a frame payload; payload sizes are uniform in [0, MaxPayload]
	MinRead    int    // smallest chunk the stream is cut into
	MaxRead    int    // largest chunk the stream is cut into
	Seed       int64
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    //	Log level numeric (0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace).
	Format    string //	Log output format (text vs json).
	Color     bool   //	Whether to use ANSI color codes in logs.
}

type MetricsDefaults struct {
	Enable bool
}

// DefaultConfig returns a fully populated Defaults instance.
func DefaultConfig() Defaults {
	return Defaults{
		Bench: BenchDefaults{
			Store:      "deque",
			Frames:     100000,
			MaxPayload: 4096,
			MinRead:    1,
			MaxRead:    16384,
			Seed:       1,
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
		Metrics: MetricsDefaults{
			Enable: false,
		},
	}
}
