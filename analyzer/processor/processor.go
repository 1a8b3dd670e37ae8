package processor

import (
	"github.com/magneticio/vamp-run-ranker/analyzer/models"
	"github.com/magneticio/vampkubistcli/logging"
)

// CreateEntrySafe returns the accumulator for key, creating an empty one on first use
func CreateEntrySafe(data models.Data, key models.ConfigKey) *models.Result {
	result, ok := data[key]
	if !ok {
		result = &models.Result{
			RunTimes: make([]float32, 0),
		}
		data[key] = result
	}
	return result
}

// ProcessRecord folds a single record into data
func ProcessRecord(data models.Data, record models.Record) {
	result := CreateEntrySafe(data, record.Key())
	switch record.Outcome.Kind {
	case models.Success:
		result.NumSuccesses++
	case models.RunTime:
		result.NumRuns++
		result.RunTimes = append(result.RunTimes, record.Outcome.RunTime)
	}
}

// Aggregate folds all records into per configuration accumulators.
// Every record is counted, repeated run numbers included.
func Aggregate(records []models.Record) models.Data {
	data := make(models.Data)
	for _, record := range records {
		ProcessRecord(data, record)
	}
	logging.Info("Aggregated %v records into %v configurations\n", len(records), len(data))
	return data
}
