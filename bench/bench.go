// Package bench replays a framed byte stream through an accumulator over a
// selectable backing store and measures how fast whole frames come out.
//
// The stream is cut into reads of random size, the way data arrives from a
// socket, so frames regularly straddle chunk boundaries and exercise the
// split/merge path of the accumulator.
package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/mclock"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-accumulator/accum"
	"github.com/rony4d/go-accumulator/store"
	"github.com/rony4d/go-accumulator/utils/frame"
)

// Store names accepted in Config.Store.
const (
	StoreDeque = "deque"
	StoreRing  = "ring"
	StoreSlice = "slice"
)

// StoreNames lists the selectable backing stores.
var StoreNames = []string{StoreDeque, StoreRing, StoreSlice}

var (
	ErrUnknownStore = errors.New("bench: unknown store")
	ErrBadConfig    = errors.New("bench: invalid config")
	ErrCorrupt      = errors.New("bench: corrupt frame")
)

// Config describes one benchmark run.
type Config struct {
	Store      string `yaml:"store"`
	Frames     int    `yaml:"frames"`
	MaxPayload int    `yaml:"max_payload"`
	MinRead    int    `yaml:"min_read"`
	MaxRead    int    `yaml:"max_read"`
	Seed       int64  `yaml:"seed"`
}

// Validate checks the numeric limits of c.
func (c Config) Validate() error {
	switch {
	case c.Frames <= 0:
		return fmt.Errorf("%w: frames must be positive, got %d", ErrBadConfig, c.Frames)
	case c.MaxPayload < 0:
		return fmt.Errorf("%w: negative max payload %d", ErrBadConfig, c.MaxPayload)
	case c.MinRead <= 0 || c.MaxRead < c.MinRead:
		return fmt.Errorf("%w: read size range [%d, %d]", ErrBadConfig, c.MinRead, c.MaxRead)
	}
	return nil
}

// Result summarises a run.
type Result struct {
	Store      string
	Frames     int
	Reads      int
	Bytes      int64
	PeakBytes  int
	PeakChunks int
	Elapsed    time.Duration
}

// Throughput returns stream bytes per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / r.Elapsed.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %d frames, %v in %d reads, %v (%v/s), peak %v in %d chunks",
		r.Store, r.Frames, common.StorageSize(r.Bytes), r.Reads, r.Elapsed,
		common.StorageSize(r.Throughput()), common.StorageSize(r.PeakBytes), r.PeakChunks)
}

// Run executes the benchmark described by cfg. Meters are registered in reg
// under "accum/<store>/..."; a nil reg uses metrics.DefaultRegistry.
func Run(cfg Config, log logrus.FieldLogger, reg metrics.Registry) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	log = log.WithField("store", cfg.Store)

	switch cfg.Store {
	case StoreDeque:
		return run(cfg, log, reg, accum.New[[]byte](store.NewDeque[[]byte](6)))
	case StoreRing:
		return run(cfg, log, reg, accum.New[[]byte](store.NewRing[[]byte](64)))
	case StoreSlice:
		return run(cfg, log, reg, accum.New[[]byte](store.NewSlice[[]byte](64)))
	}
	return Result{}, fmt.Errorf("%w %q, want one of %v", ErrUnknownStore, cfg.Store, StoreNames)
}

func run[S accum.Store[[]byte]](cfg Config, log logrus.FieldLogger, reg metrics.Registry, acc *accum.Accumulator[[]byte, S]) (Result, error) {
	var (
		rnd        = rand.New(rand.NewSource(cfg.Seed))
		dec        = frame.NewDecoder(acc, cfg.MaxPayload)
		readMeter  = metrics.NewRegisteredMeter("accum/"+cfg.Store+"/read", reg)
		frameMeter = metrics.NewRegisteredMeter("accum/"+cfg.Store+"/frames", reg)

		res      = Result{Store: cfg.Store}
		pending  []byte // encoded stream not delivered yet
		expected []int  // payload sizes of frames produced but not decoded
		produced int
	)

	log.WithFields(logrus.Fields{
		"frames":  cfg.Frames,
		"payload": cfg.MaxPayload,
		"reads":   fmt.Sprintf("%d-%d", cfg.MinRead, cfg.MaxRead),
		"seed":    cfg.Seed,
	}).Debug("Starting benchmark")

	start := mclock.Now()
	for res.Frames < cfg.Frames {
		for len(pending) < cfg.MaxRead && produced < cfg.Frames {
			p := payload(rnd, produced, cfg.MaxPayload)
			enc, err := frame.Encode(p)
			if err != nil {
				return res, err
			}
			pending = append(pending, enc...)
			expected = append(expected, len(p))
			produced++
		}
		if len(pending) == 0 {
			return res, fmt.Errorf("%w: stream ended after %d of %d frames", ErrCorrupt, res.Frames, cfg.Frames)
		}

		n := min(cfg.MinRead+rnd.Intn(cfg.MaxRead-cfg.MinRead+1), len(pending))
		chunk := make([]byte, n)
		copy(chunk, pending)
		pending = pending[n:]

		dec.Push(chunk)
		res.Reads++
		res.Bytes += int64(n)
		readMeter.Mark(int64(n))
		res.PeakBytes = max(res.PeakBytes, acc.Len())
		res.PeakChunks = max(res.PeakChunks, acc.NumChunks())

		for {
			p, err := dec.Next()
			if errors.Is(err, frame.ErrNeedMore) {
				break
			}
			if err != nil {
				return res, err
			}
			if err := verify(p, res.Frames, expected[0]); err != nil {
				return res, err
			}
			if res.Frames == 0 {
				log.WithField("head", hexutil.Encode(p[:min(len(p), 8)])).Debug("First frame decoded")
			}
			expected = expected[1:]
			res.Frames++
			frameMeter.Mark(1)
		}
	}
	res.Elapsed = time.Duration(mclock.Now() - start)

	if left := dec.Buffered(); left != 0 {
		return res, fmt.Errorf("%w: %d bytes left after the last frame", ErrCorrupt, left)
	}
	log.WithFields(logrus.Fields{
		"frames":  res.Frames,
		"bytes":   common.StorageSize(res.Bytes),
		"elapsed": res.Elapsed,
	}).Info("Benchmark finished")
	return res, nil
}

// payload builds the seq-th payload. Its bytes are derived from seq so the
// receiver can check them without keeping a copy.
func payload(rnd *rand.Rand, seq, maxSize int) []byte {
	p := make([]byte, rnd.Intn(maxSize+1))
	for i := range p {
		p[i] = byte(seq*31 + i)
	}
	return p
}

func verify(p []byte, seq, size int) error {
	if len(p) != size {
		return fmt.Errorf("%w: frame %d has %d bytes, want %d", ErrCorrupt, seq, len(p), size)
	}
	for i, b := range p {
		if b != byte(seq*31+i) {
			return fmt.Errorf("%w: frame %d byte %d is %#x", ErrCorrupt, seq, i, b)
		}
	}
	return nil
}
