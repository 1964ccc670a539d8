package bench

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"slices"
	"time"

	"github.com/arloliu/fbst/format"
)

// Result holds the timings of one strategy.
type Result struct {
	// Name is the strategy name.
	Name string
	// Elapsed is the mean wall time of one pass over all queries.
	Elapsed time.Duration
	// AvgNs is the mean latency per query in nanoseconds.
	AvgNs float64
	// StdDevNs is the standard deviation of the per-pass latencies.
	StdDevNs float64
	// Norm is Elapsed divided by the Noop Elapsed.
	Norm float64
	// Samples holds the per-query latency of every timed pass.
	Samples []float64
}

// Coverage counts the tree positions at which the descent stopped.
type Coverage struct {
	// Slots is the table length.
	Slots int
	// Terminal is the number of positions that have at most one child, which
	// are the only positions the descent can stop at.
	Terminal int
	// Reached is the number of distinct positions returned for the query set.
	Reached uint64
}

// Ratio returns Reached divided by Terminal.
func (c Coverage) Ratio() float64 {
	if c.Terminal == 0 {
		return 0
	}

	return float64(c.Reached) / float64(c.Terminal)
}

// Report is the outcome of one run.
type Report struct {
	Width   format.Width
	Layout  format.LayoutType
	Entries int
	Queries int
	Repeat  int

	// Results is ordered by ascending Elapsed.
	Results  []Result
	Coverage Coverage

	// Sink accumulates the strategy results so the timed work stays observable.
	Sink uint64
}

// Result returns the result of the named strategy.
func (r *Report) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}

	return Result{}, false
}

// normalize fills Norm from the Noop result and orders Results by elapsed
// time. Equal times keep the strategy order.
func (r *Report) normalize() {
	var baseline time.Duration
	if noop, ok := r.Result(StrategyNoop); ok {
		baseline = noop.Elapsed
	}

	for i := range r.Results {
		if baseline > 0 {
			r.Results[i].Norm = float64(r.Results[i].Elapsed) / float64(baseline)
		}
	}

	slices.SortStableFunc(r.Results, func(a, b Result) int {
		return cmp.Compare(a.Elapsed, b.Elapsed)
	})
}

// Write prints one "tag: avg ns, norm x" line per strategy, right-aligning
// the tags to the longest one.
//
// Example output:
//
//	       Noop:    0.31  ns,    1.00x
//	 FBST (ref):   12.85  ns,   41.45x
func (r *Report) Write(w io.Writer) error {
	tagWidth := 0
	for _, res := range r.Results {
		tagWidth = max(tagWidth, len(res.Name))
	}

	for _, res := range r.Results {
		if _, err := fmt.Fprintf(w, "%*s:%8.2f%5s%8.2fx\n", tagWidth, res.Name, res.AvgNs, " ns,", res.Norm); err != nil {
			return err
		}
	}

	return nil
}

type jsonRecord struct {
	Language   string  `json:"language"`
	Compiler   string  `json:"compiler"`
	Method     string  `json:"method"`
	TreeSize   int     `json:"tree_size"`
	NumQueries int     `json:"num_queries"`
	TotalSec   float64 `json:"total_sec"`
	MQS        float64 `json:"mqs"`
	NsPerQuery float64 `json:"ns_per_query"`
	StdDevNs   float64 `json:"stddev_ns"`
	Norm       float64 `json:"norm"`
	Width      string  `json:"width"`
	Layout     string  `json:"layout"`
}

// WriteJSON prints one JSON object per strategy and line.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, res := range r.Results {
		sec := res.Elapsed.Seconds()

		var mqs float64
		if sec > 0 {
			mqs = float64(r.Queries) / sec / 1e6
		}

		rec := jsonRecord{
			Language:   "go",
			Compiler:   runtime.Version(),
			Method:     res.Name,
			TreeSize:   r.Entries,
			NumQueries: r.Queries,
			TotalSec:   sec,
			MQS:        mqs,
			NsPerQuery: res.AvgNs,
			StdDevNs:   res.StdDevNs,
			Norm:       res.Norm,
			Width:      r.Width.String(),
			Layout:     r.Layout.String(),
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}

	return nil
}
