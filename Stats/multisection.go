package Stats

import (
	"math"

	"github.com/GrainArc/TerraSection/models"
)

// 多边形多断面统计：逐边统计加整体汇总

// SideStatistics 单条边的统计，带边序号
type SideStatistics struct {
	SideIndex int              `json:"side_index"`
	Record    StatisticsRecord `json:"record"`
}

// MultiSectionStatistics 多断面统计结果。
// Overall的TotalLength是各边长度之和，
// 统计量对全部边的有效样本串接后计算
type MultiSectionStatistics struct {
	PolygonID string           `json:"polygon_id"`
	Sides     []SideStatistics `json:"sides"`
	Overall   StatisticsRecord `json:"overall"`
}

// ComputeMultiSection 多断面集合统计
func ComputeMultiSection(set *models.MultiSectionSet) MultiSectionStatistics {
	out := MultiSectionStatistics{PolygonID: set.PolygonID}

	var allValid []float64
	totalLength := 0.0
	totalSamples := 0

	for _, side := range set.Sides {
		out.Sides = append(out.Sides, SideStatistics{
			SideIndex: side.Path.SideIndex,
			Record:    Compute(side.Profile),
		})

		totalLength += side.Profile.Length()
		totalSamples += len(side.Profile.Elevations)
		for _, v := range side.Profile.Elevations {
			if !math.IsNaN(v) {
				allValid = append(allValid, v)
			}
		}
	}

	overall := StatisticsRecord{
		SourceID:    overallSourceID(set),
		SampleCount: totalSamples,
		ValidCount:  len(allValid),
		TotalLength: totalLength,
	}
	if len(allValid) == 0 {
		overall.NoValid = true
	} else {
		min, max, mean, stddev, rng := computeValues(allValid)
		overall.Min = &min
		overall.Max = &max
		overall.Mean = &mean
		overall.StdDev = &stddev
		overall.Range = &rng
	}
	out.Overall = overall
	return out
}

func overallSourceID(set *models.MultiSectionSet) string {
	for _, side := range set.Sides {
		if side.Profile.SourceID != "" {
			return side.Profile.SourceID
		}
	}
	return ""
}

// CompareSources 同一断面上多个数据源剖面的统计对照表
func CompareSources(profiles []models.Profile) []StatisticsRecord {
	records := make([]StatisticsRecord, 0, len(profiles))
	for _, p := range profiles {
		records = append(records, Compute(p))
	}
	return records
}
