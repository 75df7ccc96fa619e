package Raster

import "math"

// GridSource 内存中的规则格网高程数据，原点在左上角，
// OriginX/OriginY是左上角坐标，CellSize为像元边长（y向下递减）
type GridSource struct {
	Name      string
	OriginX   float64
	OriginY   float64
	CellSize  float64
	NoDataVal float64
	HasNoData bool
	Data      [][]float64
}

func (g *GridSource) ID() string {
	return g.Name
}

func (g *GridSource) Rows() int {
	return len(g.Data)
}

func (g *GridSource) Cols() int {
	if len(g.Data) == 0 {
		return 0
	}
	return len(g.Data[0])
}

// Sample 最近邻取像元值。范围外返回OutOfExtent，
// 命中NoData标记或NaN像元返回NoData状态
func (g *GridSource) Sample(x, y float64) (float64, Status, error) {
	if g.CellSize <= 0 || g.Rows() == 0 || g.Cols() == 0 {
		return math.NaN(), OutOfExtent, nil
	}
	col := int(math.Floor((x - g.OriginX) / g.CellSize))
	row := int(math.Floor((g.OriginY - y) / g.CellSize))
	if row < 0 || row >= g.Rows() || col < 0 || col >= g.Cols() {
		return math.NaN(), OutOfExtent, nil
	}
	v := g.Data[row][col]
	if math.IsNaN(v) {
		return math.NaN(), NoData, nil
	}
	if g.HasNoData && v == g.NoDataVal {
		return math.NaN(), NoData, nil
	}
	return v, Hit, nil
}
