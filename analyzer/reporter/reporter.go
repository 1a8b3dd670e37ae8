package reporter

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/magneticio/vamp-run-ranker/analyzer/models"
	yaml "gopkg.in/yaml.v2"
)

// Format selects how the ranked tables are rendered
type Format string

const (
	// FormatPlain prints whitespace separated columns
	FormatPlain Format = "plain"
	// FormatTable prints boxed tables
	FormatTable Format = "table"
)

// Metric is a derived value configurations are ranked by
type Metric struct {
	Name  string
	Value func(models.Stat) float32
}

// SuccessesPerMean ranks by successes divided by mean run time
var SuccessesPerMean = Metric{
	Name:  "SuccessesPerMean",
	Value: func(s models.Stat) float32 { return s.SuccessesPerMean },
}

// SuccessesPerMedian ranks by successes divided by median run time
var SuccessesPerMedian = Metric{
	Name:  "SuccessesPerMedian",
	Value: func(s models.Stat) float32 { return s.SuccessesPerMedian },
}

// Metrics are reported in this order
var Metrics = []Metric{SuccessesPerMean, SuccessesPerMedian}

type Row struct {
	Key   models.ConfigKey
	Value float32
}

type dumpEntry struct {
	Key  models.ConfigKey `yaml:"key"`
	Stat models.Stat      `yaml:"stat"`
}

// less orders values ascending, NaN after everything else
func less(a, b float32) bool {
	aNaN, bNaN := math.IsNaN(float64(a)), math.IsNaN(float64(b))
	if aNaN || bNaN {
		return !aNaN && bNaN
	}
	return a < b
}

// Rank lists every configuration ascending by metric. Keys are put in key
// order first and the sort is stable, so equal values keep that order.
func Rank(stats models.Stats, metric Metric) []Row {
	keys := stats.SortedKeys()
	rows := make([]Row, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, Row{Key: key, Value: metric.Value(stats[key])})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return less(rows[i].Value, rows[j].Value)
	})
	return rows
}

// FormatValue prints a float in its shortest fixed point form
func FormatValue(value float32) string {
	v := float64(value)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 32)
}

// Dump writes every Stat in key order as YAML
func Dump(w io.Writer, stats models.Stats) error {
	entries := make([]dumpEntry, 0, len(stats))
	for _, key := range stats.SortedKeys() {
		entries = append(entries, dumpEntry{Key: key, Stat: stats[key]})
	}
	out, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("cannot marshal stats: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// WriteRanking writes the header and one row per configuration for metric
func WriteRanking(w io.Writer, stats models.Stats, metric Metric, format Format) error {
	rows := Rank(stats, metric)
	if format == FormatTable {
		tbl := table.NewWriter()
		tbl.SetStyle(table.StyleLight)
		tbl.AppendHeader(table.Row{"PopSize", "NumGens", metric.Name})
		for _, row := range rows {
			tbl.AppendRow(table.Row{row.Key.PopulationSize, row.Key.NumGenerations, FormatValue(row.Value)})
		}
		_, err := fmt.Fprintln(w, tbl.Render())
		return err
	}
	if _, err := fmt.Fprintf(w, "PopSize   NumGens %s\n", metric.Name); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%d    %d  %s\n", row.Key.PopulationSize, row.Key.NumGenerations, FormatValue(row.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Report writes the stats dump followed by one ranking per metric, each
// preceded by a blank line
func Report(w io.Writer, stats models.Stats, format Format) error {
	if err := Dump(w, stats); err != nil {
		return err
	}
	for _, metric := range Metrics {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := WriteRanking(w, stats, metric, format); err != nil {
			return err
		}
	}
	return nil
}
