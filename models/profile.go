package models

import "math"

// Station 断面上的一个采样桩号
type Station struct {
	Index    int     `json:"index"`
	Distance float64 `json:"distance"` // 距起点的累计距离
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// Profile 单条断面线在单个数据源上的高程剖面
// Elevations与Stations按下标对齐，NaN表示超出范围或NoData
type Profile struct {
	SourceID   string    `json:"source_id"`
	Stations   []Station `json:"stations"`
	Elevations []float64 `json:"elevations"`
}

// Length 剖面总长度（末桩号的累计距离）
func (p *Profile) Length() float64 {
	if len(p.Stations) == 0 {
		return 0
	}
	return p.Stations[len(p.Stations)-1].Distance
}

// ValidMask 有效高程掩膜（非NaN为true）
func (p *Profile) ValidMask() []bool {
	mask := make([]bool, len(p.Elevations))
	for i, z := range p.Elevations {
		mask[i] = !math.IsNaN(z)
	}
	return mask
}

// ValidCount 有效高程个数
func (p *Profile) ValidCount() int {
	n := 0
	for _, z := range p.Elevations {
		if !math.IsNaN(z) {
			n++
		}
	}
	return n
}

// MinElevation 有效高程最小值，全为NaN时返回NaN
func (p *Profile) MinElevation() float64 {
	min := math.NaN()
	for _, z := range p.Elevations {
		if math.IsNaN(z) {
			continue
		}
		if math.IsNaN(min) || z < min {
			min = z
		}
	}
	return min
}
