package models

import (
	"fmt"
	"sort"
	"strconv"
)

type OutcomeKind int

const (
	Success OutcomeKind = iota
	RunTime
)

type Outcome struct {
	Kind    OutcomeKind
	RunTime float32
}

type Record struct {
	PopulationSize uint32
	NumGenerations uint32
	RunNumber      uint32
	Outcome        Outcome
}

// String renders the record in the canonical log line form
func (r Record) String() string {
	prefix := fmt.Sprintf("PS_%d/NG_%d/run_%d.output:", r.PopulationSize, r.NumGenerations, r.RunNumber)
	if r.Outcome.Kind == Success {
		return prefix + "SUCCESS"
	}
	return prefix + " " + strconv.FormatFloat(float64(r.Outcome.RunTime), 'g', -1, 32)
}

// Key returns the configuration the record belongs to
func (r Record) Key() ConfigKey {
	return ConfigKey{
		PopulationSize: r.PopulationSize,
		NumGenerations: r.NumGenerations,
	}
}

type ConfigKey struct {
	PopulationSize uint32 `yaml:"population_size"`
	NumGenerations uint32 `yaml:"num_generations"`
}

func (k ConfigKey) String() string {
	return fmt.Sprintf("PS_%d/NG_%d", k.PopulationSize, k.NumGenerations)
}

// Less orders keys by population size, then number of generations
func (k ConfigKey) Less(other ConfigKey) bool {
	if k.PopulationSize != other.PopulationSize {
		return k.PopulationSize < other.PopulationSize
	}
	return k.NumGenerations < other.NumGenerations
}

type Result struct {
	NumRuns      int       `yaml:"num_runs"`
	NumSuccesses int       `yaml:"num_successes"`
	RunTimes     []float32 `yaml:"run_times"`
}

type Stat struct {
	Result             Result  `yaml:"result"`
	MeanRunTime        float32 `yaml:"mean_run_time"`
	MedianRunTime      float32 `yaml:"median_run_time"`
	SuccessesPerMean   float32 `yaml:"successes_per_mean"`
	SuccessesPerMedian float32 `yaml:"successes_per_median"`
}

type Data map[ConfigKey]*Result

type Stats map[ConfigKey]Stat

// SortedKeys returns the keys of stats in ascending key order
func (s Stats) SortedKeys() []ConfigKey {
	keys := make([]ConfigKey, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	return keys
}
