package main

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/llxisdsh/hashtable"
)

// CLI holds the htbench flags.
type CLI struct {
	Keys       int     `help:"Number of distinct keys to insert." default:"100000"`
	Capacity   int     `help:"Initial capacity. Non-positive selects the default." default:"16"`
	LoadFactor float64 `help:"Load factor. Non-positive selects the default." default:"0.75"`
	KeyType    string  `help:"Type of generated keys." enum:"int,string,uuid" default:"int"`
	Lookups    bool    `help:"Read every key back after inserting." default:"true" negatable:""`
	LogLevel   string  `help:"Log level: debug, info, warn or error." default:"info"`
}

type report struct {
	KeyType   string
	Keys      int
	Insert    time.Duration
	Lookup    time.Duration
	HeapBytes uint64
	Stats     *hashtable.TableStats
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	allowed, err := level.Parse(lvl)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", lvl, err)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, level.Allow(allowed)), nil
}

// Run generates the keys, fills a table and prints the report to out.
func (c *CLI) Run(out io.Writer, logger log.Logger) error {
	if c.Keys < 0 {
		return fmt.Errorf("--keys must not be negative, got %d", c.Keys)
	}
	level.Info(logger).Log("msg", "starting", "keys", c.Keys, "key_type", c.KeyType,
		"capacity", c.Capacity, "load_factor", c.LoadFactor)

	var (
		r   *report
		err error
	)
	switch c.KeyType {
	case "int":
		r, err = fill(c, logger, func(i int) int { return i })
	case "string":
		r, err = fill(c, logger, func(i int) string { return "key-" + strconv.Itoa(i) })
	case "uuid":
		r, err = fill(c, logger, func(i int) uuid.UUID {
			return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strconv.Itoa(i)))
		})
	default:
		return fmt.Errorf("unknown key type %q", c.KeyType)
	}
	if err != nil {
		return err
	}

	printReport(out, r)
	level.Info(logger).Log("msg", "done", "size", r.Stats.Size, "capacity", r.Stats.Capacity,
		"growths", r.Stats.TotalGrowths)
	return nil
}

func fill[K comparable](c *CLI, logger log.Logger, keyFor func(int) K) (*report, error) {
	keys := make([]K, c.Keys)
	for i := range keys {
		keys[i] = keyFor(i)
	}

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	h := hashtable.NewWithCapacity[K, int](c.Capacity, c.LoadFactor, hashtable.WithLogger(logger))
	start := time.Now()
	for i, k := range keys {
		h.Put(k, i)
	}
	r := &report{
		KeyType: c.KeyType,
		Keys:    len(keys),
		Insert:  time.Since(start),
	}

	runtime.ReadMemStats(&after)
	if after.HeapAlloc > before.HeapAlloc {
		r.HeapBytes = after.HeapAlloc - before.HeapAlloc
	}

	if h.Size() != len(keys) {
		return nil, fmt.Errorf("table holds %d keys, inserted %d", h.Size(), len(keys))
	}

	if c.Lookups {
		start = time.Now()
		for i, k := range keys {
			v, ok := h.Get(k)
			if !ok {
				return nil, fmt.Errorf("key #%d (%v) not found", i, k)
			}
			if v != i {
				return nil, fmt.Errorf("key #%d (%v): got value %d", i, k, v)
			}
		}
		r.Lookup = time.Since(start)
	}

	r.Stats = h.Stats()
	return r, nil
}

func perOp(d time.Duration, n int) string {
	if n == 0 {
		return "-"
	}
	return humanize.CommafWithDigits(float64(d.Nanoseconds())/float64(n), 1) + " ns/op"
}

func printReport(out io.Writer, r *report) {
	s := r.Stats
	fmt.Fprintln(out, "Key type      : ", r.KeyType)
	fmt.Fprintln(out, "Keys          : ", humanize.Comma(int64(r.Keys)))
	fmt.Fprintln(out, "Insert        : ", r.Insert, "("+perOp(r.Insert, r.Keys)+")")
	if r.Lookup > 0 {
		fmt.Fprintln(out, "Lookup        : ", r.Lookup, "("+perOp(r.Lookup, r.Keys)+")")
	}
	fmt.Fprintln(out, "Heap growth   : ", humanize.Bytes(r.HeapBytes))
	fmt.Fprintln(out, "Capacity      : ", humanize.Comma(int64(s.Capacity)))
	fmt.Fprintln(out, "Threshold     : ", humanize.Comma(int64(s.Threshold)))
	fmt.Fprintln(out, "Load factor   : ", s.LoadFactor)
	fmt.Fprintln(out, "Growths       : ", s.TotalGrowths)
	fmt.Fprintln(out, "Empty buckets : ", humanize.Comma(int64(s.EmptyBuckets)))
	fmt.Fprintln(out, "Chain length  : ", fmt.Sprintf("min %d, max %d", s.MinChain, s.MaxChain))
}
