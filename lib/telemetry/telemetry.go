/*package telemetry records per-call statistics of the buffer partition and
writes them as CSV so runs can be compared offline.*/
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// Record captures one buffer-partition call on one tile.
type Record struct {
	Step         int   `csv:"step"`
	Level        int   `csv:"level"`
	NP           int   `csv:"np"`
	NFineCurrent int   `csv:"nfine_current"`
	NFineGather  int   `csv:"nfine_gather"`
	Micros       int64 `csv:"us"`
}

// Collector accumulates partition records and writes them to
// partition.csv in the output directory. A nil Collector discards
// everything, so callers don't need to guard on output being enabled.
type Collector struct {
	records       []Record
	file          *os.File
	headerWritten bool
}

// NewCollector creates a Collector writing into dir. An empty dir disables
// output and returns nil.
func NewCollector(dir string) (*Collector, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "partition.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating partition.csv: %w", err)
	}
	return &Collector{ file: f }, nil
}

// Add appends one record.
func (c *Collector) Add(r Record) {
	if c == nil {
		return
	}
	c.records = append(c.records, r)
}

// Flush writes the records accumulated since the last Flush to disk.
func (c *Collector) Flush() error {
	if c == nil || len(c.records) == 0 {
		return nil
	}

	var err error
	if !c.headerWritten {
		err = gocsv.Marshal(c.records, c.file)
		c.headerWritten = true
	} else {
		err = gocsv.MarshalWithoutHeaders(c.records, c.file)
	}
	if err != nil {
		return fmt.Errorf("writing partition.csv: %w", err)
	}
	c.records = c.records[:0]
	return nil
}

// Close flushes any pending records and closes the file.
func (c *Collector) Close() error {
	if c == nil {
		return nil
	}
	if err := c.Flush(); err != nil {
		c.file.Close()
		return err
	}
	return c.file.Close()
}

// Summary describes the distribution of fine-patch fractions across the
// recorded partition calls.
type Summary struct {
	Calls              int
	MedianFineCurrent  float64
	MedianFineGather   float64
	P10FineCurrent     float64
	P90FineCurrent     float64
}

// Summarize computes quantiles of the fine fraction over the records still
// buffered in the Collector. Calls on empty tiles are skipped.
func Summarize(records []Record) Summary {
	cur := []float64{}
	gat := []float64{}
	for _, r := range records {
		if r.NP == 0 {
			continue
		}
		cur = append(cur, float64(r.NFineCurrent)/float64(r.NP))
		gat = append(gat, float64(r.NFineGather)/float64(r.NP))
	}
	if len(cur) == 0 {
		return Summary{}
	}

	sort.Float64s(cur)
	sort.Float64s(gat)
	return Summary{
		Calls:             len(cur),
		MedianFineCurrent: stat.Quantile(0.5, stat.Empirical, cur, nil),
		MedianFineGather:  stat.Quantile(0.5, stat.Empirical, gat, nil),
		P10FineCurrent:    stat.Quantile(0.1, stat.Empirical, cur, nil),
		P90FineCurrent:    stat.Quantile(0.9, stat.Empirical, cur, nil),
	}
}

// Records returns the records buffered since the last Flush.
func (c *Collector) Records() []Record {
	if c == nil {
		return nil
	}
	return c.records
}
