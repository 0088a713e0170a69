package bench

import (
	"testing"

	"github.com/ethereum/go-ethereum/metrics"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func testConfig(store string) Config {
	return Config{
		Store:      store,
		Frames:     500,
		MaxPayload: 700,
		MinRead:    1,
		MaxRead:    1500,
		Seed:       1,
	}
}

func TestRun_AllStores(t *testing.T) {
	for _, name := range StoreNames {
		t.Run(name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			logger.SetLevel(logrus.DebugLevel)

			res, err := Run(testConfig(name), logger, metrics.NewRegistry())
			require.NoError(t, err)
			require.Equal(t, name, res.Store)
			require.Equal(t, 500, res.Frames)
			require.Positive(t, res.Reads)
			require.Positive(t, res.Bytes)
			require.Positive(t, res.PeakChunks)
			require.Contains(t, res.String(), "500 frames")

			last := hook.LastEntry()
			require.NotNil(t, last)
			require.Equal(t, "Benchmark finished", last.Message)
			require.Equal(t, name, last.Data["store"])
		})
	}
}

func TestRun_SameSeedSameStream(t *testing.T) {
	logger, _ := test.NewNullLogger()

	a, err := Run(testConfig(StoreRing), logger, nil)
	require.NoError(t, err)
	b, err := Run(testConfig(StoreSlice), logger, nil)
	require.NoError(t, err)

	require.Equal(t, a.Bytes, b.Bytes)
	require.Equal(t, a.Reads, b.Reads)
	require.Equal(t, a.PeakBytes, b.PeakBytes)
}

func TestRun_SmallReads(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := testConfig(StoreDeque)
	cfg.MinRead, cfg.MaxRead = 1, 3
	cfg.Frames = 50

	res, err := Run(cfg, logger, nil)
	require.NoError(t, err)
	require.Equal(t, 50, res.Frames)
}

func TestRun_EmptyPayloads(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := testConfig(StoreRing)
	cfg.MaxPayload = 0

	res, err := Run(cfg, logger, nil)
	require.NoError(t, err)
	require.Equal(t, int64(4*cfg.Frames), res.Bytes)
}

func TestRun_RegistersMeters(t *testing.T) {
	logger, _ := test.NewNullLogger()
	reg := metrics.NewRegistry()

	_, err := Run(testConfig(StoreDeque), logger, reg)
	require.NoError(t, err)
	require.NotNil(t, reg.Get("accum/deque/read"))
	require.NotNil(t, reg.Get("accum/deque/frames"))
}

func TestRun_Errors(t *testing.T) {
	logger, _ := test.NewNullLogger()

	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{"unknown store", func(c *Config) { c.Store = "list" }, ErrUnknownStore},
		{"no frames", func(c *Config) { c.Frames = 0 }, ErrBadConfig},
		{"negative payload", func(c *Config) { c.MaxPayload = -1 }, ErrBadConfig},
		{"zero read", func(c *Config) { c.MinRead = 0 }, ErrBadConfig},
		{"inverted reads", func(c *Config) { c.MinRead, c.MaxRead = 10, 5 }, ErrBadConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(StoreRing)
			tt.modify(&cfg)
			_, err := Run(cfg, logger, nil)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVerify(t *testing.T) {
	p := []byte{byte(3 * 31), byte(3*31 + 1)}
	require.NoError(t, verify(p, 3, 2))
	require.ErrorIs(t, verify(p, 3, 3), ErrCorrupt)
	require.ErrorIs(t, verify(p, 4, 2), ErrCorrupt)
}

func TestResult_Throughput(t *testing.T) {
	require.Zero(t, Result{Bytes: 10}.Throughput())
	require.Equal(t, 2048.0, Result{Bytes: 1024, Elapsed: 500_000_000}.Throughput())
}
