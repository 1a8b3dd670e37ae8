package statsengine_test

import (
	"math"
	"os"
	"testing"

	"github.com/magneticio/vamp-run-ranker/analyzer/models"
	"github.com/magneticio/vamp-run-ranker/analyzer/statsengine"
	"github.com/magneticio/vampkubistcli/logging"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logging.Init(os.Stdout, os.Stderr)
	os.Exit(m.Run())
}

func isNaN(v float32) bool {
	return math.IsNaN(float64(v))
}

func TestMean(t *testing.T) {
	assert.Equal(t, float32(4), statsengine.Mean([]float32{2, 4, 6}))
	assert.Equal(t, float32(1.5), statsengine.Mean([]float32{1.5}))
	assert.True(t, isNaN(statsengine.Mean([]float32{})))
	assert.True(t, isNaN(statsengine.Mean(nil)))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, float32(2), statsengine.Median([]float32{1, 2, 3}))
	assert.Equal(t, float32(2.5), statsengine.Median([]float32{1, 2, 3, 4}))
	assert.Equal(t, float32(2), statsengine.Median([]float32{3, 1, 2}))
	assert.Equal(t, float32(2.5), statsengine.Median([]float32{4, 1, 3, 2}))
	assert.Equal(t, float32(7), statsengine.Median([]float32{7}))
	assert.True(t, isNaN(statsengine.Median([]float32{})))
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	values := []float32{3, 1, 2}
	statsengine.Median(values)
	assert.Equal(t, []float32{3, 1, 2}, values)
}

func TestProcessResult(t *testing.T) {
	key := models.ConfigKey{PopulationSize: 10, NumGenerations: 20}
	result := &models.Result{NumRuns: 3, NumSuccesses: 4, RunTimes: []float32{2, 4, 6}}
	stat := statsengine.ProcessResult(key, result)
	assert.Equal(t, float32(4), stat.MeanRunTime)
	assert.Equal(t, float32(4), stat.MedianRunTime)
	assert.Equal(t, float32(1), stat.SuccessesPerMean)
	assert.Equal(t, float32(1), stat.SuccessesPerMedian)
	assert.Equal(t, *result, stat.Result)
}

func TestProcessResultWithoutRunTimes(t *testing.T) {
	key := models.ConfigKey{PopulationSize: 10, NumGenerations: 20}
	stat := statsengine.ProcessResult(key, &models.Result{NumSuccesses: 2, RunTimes: []float32{}})
	assert.True(t, isNaN(stat.MeanRunTime))
	assert.True(t, isNaN(stat.MedianRunTime))
	assert.True(t, isNaN(stat.SuccessesPerMean))
	assert.True(t, isNaN(stat.SuccessesPerMedian))
}

func TestProcessResultZeroRunTime(t *testing.T) {
	key := models.ConfigKey{PopulationSize: 1, NumGenerations: 1}
	stat := statsengine.ProcessResult(key, &models.Result{NumRuns: 2, NumSuccesses: 3, RunTimes: []float32{0, 0}})
	assert.Equal(t, float32(0), stat.MeanRunTime)
	assert.True(t, math.IsInf(float64(stat.SuccessesPerMean), 1))
	assert.True(t, math.IsInf(float64(stat.SuccessesPerMedian), 1))

	stat = statsengine.ProcessResult(key, &models.Result{NumRuns: 1, NumSuccesses: 0, RunTimes: []float32{0}})
	assert.True(t, isNaN(stat.SuccessesPerMean))
}

func TestProcessData(t *testing.T) {
	data := models.Data{
		{PopulationSize: 10, NumGenerations: 20}:  {NumRuns: 2, NumSuccesses: 1, RunTimes: []float32{1, 3}},
		{PopulationSize: 50, NumGenerations: 100}: {NumSuccesses: 5, RunTimes: []float32{}},
		{PopulationSize: 50, NumGenerations: 200}: {NumRuns: 1, RunTimes: []float32{8}},
	}
	result := statsengine.ProcessData(data)
	assert.Equal(t, len(data), len(result))
	for key := range data {
		assert.Contains(t, result, key)
	}
	first := result[models.ConfigKey{PopulationSize: 10, NumGenerations: 20}]
	assert.Equal(t, float32(2), first.MeanRunTime)
	assert.Equal(t, float32(0.5), first.SuccessesPerMedian)
	third := result[models.ConfigKey{PopulationSize: 50, NumGenerations: 200}]
	assert.Equal(t, float32(0), third.SuccessesPerMean)
}
