package metrics

import (
	"math"
	"sort"
	"strings"

	"jobtimeline/internal/models"
)

// JobOutcome summarises the runs of one job within the fetched window.
type JobOutcome struct {
	Name           string        `json:"name"`
	Runs           int           `json:"runs"`
	Succeeded      int           `json:"succeeded"`
	Failed         int           `json:"failed"`
	Other          int           `json:"other"`
	SuccessPercent float64       `json:"success_percent"`
	LastStatus     models.Status `json:"last_status"`
}

// StatusCount is the number of runs that ended with a status.
type StatusCount struct {
	Status models.Status `json:"status"`
	Color  string        `json:"color"`
	Count  int           `json:"count"`
}

var statusOrder = []models.Status{
	models.StatusSuccess,
	models.StatusFailure,
	models.StatusRetry,
	models.StatusCanceled,
	models.StatusUnknown,
}

// ComputeJobOutcomes aggregates run statistics per job. Records are expected
// most recent first, so the first record seen for a job sets LastStatus.
func ComputeJobOutcomes(records []models.JobRunRecord) []JobOutcome {
	state := make(map[string]*JobOutcome)
	for _, rec := range records {
		target := state[rec.JobName]
		if target == nil {
			target = &JobOutcome{Name: rec.JobName, LastStatus: rec.Status}
			state[rec.JobName] = target
		}
		target.Runs++
		switch rec.Status {
		case models.StatusSuccess:
			target.Succeeded++
		case models.StatusFailure:
			target.Failed++
		default:
			target.Other++
		}
	}
	if len(state) == 0 {
		return nil
	}

	keys := make([]string, 0, len(state))
	for k := range state {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := strings.ToLower(keys[i]), strings.ToLower(keys[j])
		if li == lj {
			return keys[i] < keys[j]
		}
		return li < lj
	})

	results := make([]JobOutcome, 0, len(keys))
	for _, name := range keys {
		data := state[name]
		data.SuccessPercent = round2(float64(data.Succeeded) / float64(data.Runs) * 100)
		results = append(results, *data)
	}
	return results
}

// CountStatuses returns a count for every status, in a fixed display order.
func CountStatuses(records []models.JobRunRecord) []StatusCount {
	counts := make(map[models.Status]int, len(statusOrder))
	for _, rec := range records {
		counts[rec.Status]++
	}
	out := make([]StatusCount, 0, len(statusOrder))
	for _, s := range statusOrder {
		out = append(out, StatusCount{Status: s, Color: s.Color(), Count: counts[s]})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
