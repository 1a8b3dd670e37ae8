// Package statsengine derives run time statistics from the per configuration
// accumulators.
//
// Degenerate input is not an error here. A configuration without run times has
// a NaN mean and median, and a zero run time gives an infinite ratio. Both are
// carried into the resulting Stat as they are.
package statsengine

import (
	"math"

	"github.com/magneticio/vamp-run-ranker/analyzer/models"
	"github.com/magneticio/vampkubistcli/logging"
	"github.com/montanaflynn/stats"
)

func toFloat64Data(values []float32) stats.Float64Data {
	data := make(stats.Float64Data, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return data
}

// Mean returns the arithmetic mean of values, NaN when values is empty
func Mean(values []float32) float32 {
	mean, err := stats.Mean(toFloat64Data(values))
	if err != nil {
		return float32(math.NaN())
	}
	return float32(mean)
}

// Median returns the middle value of a sorted copy of values, or the mean of
// the two middle values for an even count. NaN when values is empty.
func Median(values []float32) float32 {
	median, err := stats.Median(toFloat64Data(values))
	if err != nil {
		return float32(math.NaN())
	}
	return float32(median)
}

// ProcessResult computes the Stat of a single configuration. The result is
// copied into the Stat unchanged.
func ProcessResult(key models.ConfigKey, result *models.Result) models.Stat {
	if len(result.RunTimes) == 0 {
		logging.Info("No run times for %v, mean and median are undefined\n", key)
	}
	successes := float32(result.NumSuccesses)
	meanRunTime := Mean(result.RunTimes)
	medianRunTime := Median(result.RunTimes)
	stat := models.Stat{
		Result:             *result,
		MeanRunTime:        meanRunTime,
		MedianRunTime:      medianRunTime,
		SuccessesPerMean:   successes / meanRunTime,
		SuccessesPerMedian: successes / medianRunTime,
	}
	if !isFinite(stat.SuccessesPerMean) || !isFinite(stat.SuccessesPerMedian) {
		logging.Info("Non finite ratios for %v: per mean %v, per median %v\n", key, stat.SuccessesPerMean, stat.SuccessesPerMedian)
	}
	return stat
}

// ProcessData computes one Stat for every configuration in data
func ProcessData(data models.Data) models.Stats {
	result := make(models.Stats, len(data))
	for key, accumulator := range data {
		result[key] = ProcessResult(key, accumulator)
	}
	return result
}

func isFinite(value float32) bool {
	v := float64(value)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
