package core

import (
	"math"
	"slices"

	"urlprof/types"
)

// Aggregate reduces the samples of a run into a summary. With no duration
// samples the duration fields keep their sentinels: zero average and
// median, min at MaxFloat32 and max at -MaxFloat32. The median is the
// upper median, sorted[len/2].
func Aggregate(acc types.Accumulator, total int) types.StatsSummary {
	summary := types.StatsSummary{
		RequestCount: total,
		MinDuration:  math.MaxFloat32,
		MaxDuration:  -math.MaxFloat32,
		MinByteSize:  acc.MinBytes,
		MaxByteSize:  acc.MaxBytes,
	}

	if len(acc.Durations) > 0 {
		sorted := slices.Clone(acc.Durations)
		slices.Sort(sorted)

		var sum float32
		for _, d := range sorted {
			sum += d
			summary.MinDuration = min(summary.MinDuration, d)
			summary.MaxDuration = max(summary.MaxDuration, d)
		}
		summary.MedianDuration = sorted[len(sorted)/2]
		summary.AverageDuration = sum / float32(len(sorted))
	}

	summary.SuccessPercentage = float32(acc.SuccessCount) / float32(total) * 100
	return summary
}
