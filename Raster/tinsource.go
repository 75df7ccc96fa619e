package Raster

import (
	"math"

	"github.com/GrainArc/TerraSection/Tin"
)

// TinSource 把三角网当作高程数据源用，
// 网外的点按范围外处理
type TinSource struct {
	Name string
	TIN  *Tin.TIN3D
}

// NewTinSource 由散点构建三角网数据源
func NewTinSource(name string, points []*Tin.Point3D) *TinSource {
	return &TinSource{Name: name, TIN: Tin.BuildTIN(points)}
}

func (t *TinSource) ID() string {
	return t.Name
}

func (t *TinSource) Sample(x, y float64) (float64, Status, error) {
	z, ok := t.TIN.ElevationAt(x, y)
	if !ok {
		return math.NaN(), OutOfExtent, nil
	}
	return z, Hit, nil
}
