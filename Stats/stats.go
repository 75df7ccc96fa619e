package Stats

import (
	"math"

	"github.com/GrainArc/TerraSection/models"
)

// NaN感知的剖面统计：NaN样本不参与计算也不报错，
// 全NaN时数值字段置空并标记NoValidSamples

// StatisticsRecord 单条剖面的统计结果，
// 指针字段为nil表示没有有效样本可算
type StatisticsRecord struct {
	SourceID    string   `json:"source_id"`
	SampleCount int      `json:"sample_count"`
	ValidCount  int      `json:"valid_count"`
	TotalLength float64  `json:"total_length"`
	Min         *float64 `json:"min_elevation"`
	Max         *float64 `json:"max_elevation"`
	Mean        *float64 `json:"mean_elevation"`
	StdDev      *float64 `json:"stddev_elevation"`
	Range       *float64 `json:"elevation_range"`
	NoValid     bool     `json:"no_valid_samples"`
}

// computeValues 对有效样本算五个统计量
func computeValues(values []float64) (min, max, mean, stddev, rng float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	sum := 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	mean = sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	stddev = math.Sqrt(sq / float64(len(values)))
	rng = max - min
	return
}

// Compute 单条剖面统计
func Compute(p models.Profile) StatisticsRecord {
	rec := StatisticsRecord{
		SourceID:    p.SourceID,
		SampleCount: len(p.Elevations),
		TotalLength: p.Length(),
	}

	var valid []float64
	for _, v := range p.Elevations {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	rec.ValidCount = len(valid)

	if len(valid) == 0 {
		rec.NoValid = true
		return rec
	}

	min, max, mean, stddev, rng := computeValues(valid)
	rec.Min = &min
	rec.Max = &max
	rec.Mean = &mean
	rec.StdDev = &stddev
	rec.Range = &rng
	return rec
}

// ComputeDiff 两条剖面的高程差统计。
// 先取两侧都有效的桩号做交集，再对差值算统计量，
// 没有重叠有效桩号时NoValid为true
func ComputeDiff(a, b models.Profile) StatisticsRecord {
	n := len(a.Elevations)
	if len(b.Elevations) < n {
		n = len(b.Elevations)
	}

	rec := StatisticsRecord{
		SourceID:    a.SourceID + "-" + b.SourceID,
		SampleCount: n,
		TotalLength: a.Length(),
	}

	var diffs []float64
	for i := 0; i < n; i++ {
		va, vb := a.Elevations[i], b.Elevations[i]
		if math.IsNaN(va) || math.IsNaN(vb) {
			continue
		}
		diffs = append(diffs, va-vb)
	}
	rec.ValidCount = len(diffs)

	if len(diffs) == 0 {
		rec.NoValid = true
		return rec
	}

	min, max, mean, stddev, rng := computeValues(diffs)
	rec.Min = &min
	rec.Max = &max
	rec.Mean = &mean
	rec.StdDev = &stddev
	rec.Range = &rng
	return rec
}
