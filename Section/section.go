package Section

import (
	"fmt"
	"math"

	"github.com/GrainArc/TerraSection/models"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// 断面线生成器：平行偏移对、多边形边分解、矩形与手绘缓冲。
// 本包只做平面几何，不接触任何栅格数据

// Straight 由顶点序列构造直线断面
func Straight(points ...orb.Point) (models.StraightPath, error) {
	line := orb.LineString(points)
	if err := checkPolyline(line); err != nil {
		return models.StraightPath{}, err
	}
	return models.StraightPath{Points: line}, nil
}

// OffsetPair 由两点中心线与偏移距离d生成平行断面对：
// 先求中心线单位方向向量，旋转90°得到垂向单位向量，
// 两端点各沿±d·perp平移即得主副两线
func OffsetPair(p0, p1 orb.Point, d float64) (models.OffsetPairPath, error) {
	dx := p1[0] - p0[0]
	dy := p1[1] - p0[1]
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		// 零长度中心线没有确定的偏移方向
		return models.OffsetPairPath{}, fmt.Errorf("%w: 中心线两端点重合，偏移方向不确定", models.ErrInvalidGeometry)
	}

	// 单位方向向量逆时针旋转90°
	perpX := -dy / length * d
	perpY := dx / length * d

	primary := models.StraightPath{Points: orb.LineString{
		{p0[0] + perpX, p0[1] + perpY},
		{p1[0] + perpX, p1[1] + perpY},
	}}
	secondary := models.StraightPath{Points: orb.LineString{
		{p0[0] - perpX, p0[1] - perpY},
		{p1[0] - perpX, p1[1] - perpY},
	}}

	return models.OffsetPairPath{
		Center:    models.StraightPath{Points: orb.LineString{p0, p1}},
		Primary:   primary,
		Secondary: secondary,
		Offset:    d,
	}, nil
}

// DecomposePolygon 把闭合多边形按边拆分为断面线，每条边一个PolygonSidePath，
// SideIndex保持顶点顺序。边长之和等于多边形周长
func DecomposePolygon(ring []orb.Point, width float64) ([]models.PolygonSidePath, error) {
	verts := dropClosingPoint(ring)
	if len(verts) < 3 {
		return nil, fmt.Errorf("%w: 多边形至少需要3个不重合顶点，实际%d个", models.ErrInvalidGeometry, len(verts))
	}

	polygonID := uuid.New().String()
	sides := make([]models.PolygonSidePath, 0, len(verts))
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		if a == b {
			return nil, fmt.Errorf("%w: 第%d条边两端点重合", models.ErrInvalidGeometry, i)
		}
		sides = append(sides, models.PolygonSidePath{
			SideIndex: i,
			Width:     width,
			PolygonID: polygonID,
			Points:    orb.LineString{a, b},
		})
	}
	return sides, nil
}

// Perimeter 多边形周长，用于校验边分解结果
func Perimeter(ring []orb.Point) float64 {
	verts := dropClosingPoint(ring)
	total := 0.0
	for i := range verts {
		total += planar.Distance(verts[i], verts[(i+1)%len(verts)])
	}
	return total
}

// Freehand 手绘断面：采样中心线就是输入折线本身，
// 缓冲多边形只作为显示/导出属性携带
func Freehand(line orb.LineString, width float64) (models.FreehandPath, error) {
	if err := checkPolyline(line); err != nil {
		return models.FreehandPath{}, err
	}
	return models.FreehandPath{
		Line:   line,
		Width:  width,
		Buffer: bufferPolyline(line, width/2),
	}, nil
}

// Rectangle 矩形断面：两点中心线按宽度向两侧各撑出width/2得到四角
func Rectangle(p0, p1 orb.Point, width float64) (models.RectanglePath, error) {
	dx := p1[0] - p0[0]
	dy := p1[1] - p0[1]
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return models.RectanglePath{}, fmt.Errorf("%w: 矩形中心线两端点重合", models.ErrInvalidGeometry)
	}
	dx /= length
	dy /= length

	perpX := -dy * width / 2
	perpY := dx * width / 2

	corners := orb.Ring{
		{p0[0] + perpX, p0[1] + perpY},
		{p1[0] + perpX, p1[1] + perpY},
		{p1[0] - perpX, p1[1] - perpY},
		{p0[0] - perpX, p0[1] - perpY},
		{p0[0] + perpX, p0[1] + perpY},
	}

	return models.RectanglePath{
		Line:    models.StraightPath{Points: orb.LineString{p0, p1}},
		Width:   width,
		Corners: corners,
	}, nil
}

// checkPolyline 折线合法性：至少两个不重合顶点
func checkPolyline(line orb.LineString) error {
	if len(line) < 2 {
		return fmt.Errorf("%w: 折线至少需要2个顶点，实际%d个", models.ErrInvalidGeometry, len(line))
	}
	distinct := false
	for i := 1; i < len(line); i++ {
		if line[i] != line[0] {
			distinct = true
			break
		}
	}
	if !distinct {
		return fmt.Errorf("%w: 折线全部顶点重合", models.ErrInvalidGeometry)
	}
	return nil
}

// dropClosingPoint 去掉闭合环的重复末点
func dropClosingPoint(ring []orb.Point) []orb.Point {
	if len(ring) >= 2 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

// bufferPolyline 沿折线两侧各偏移half构造缓冲多边形。
// 顶点处取相邻两段法向的平均方向，只用于显示，不参与采样
func bufferPolyline(line orb.LineString, half float64) orb.Polygon {
	n := len(line)
	if n < 2 || half <= 0 {
		return nil
	}

	normals := make([][2]float64, n)
	for i := 0; i < n; i++ {
		var nx, ny float64
		if i > 0 {
			sx, sy := segNormal(line[i-1], line[i])
			nx += sx
			ny += sy
		}
		if i < n-1 {
			sx, sy := segNormal(line[i], line[i+1])
			nx += sx
			ny += sy
		}
		l := math.Sqrt(nx*nx + ny*ny)
		if l > 0 {
			nx /= l
			ny /= l
		}
		normals[i] = [2]float64{nx, ny}
	}

	ring := make(orb.Ring, 0, 2*n+1)
	for i := 0; i < n; i++ {
		ring = append(ring, orb.Point{line[i][0] + normals[i][0]*half, line[i][1] + normals[i][1]*half})
	}
	for i := n - 1; i >= 0; i-- {
		ring = append(ring, orb.Point{line[i][0] - normals[i][0]*half, line[i][1] - normals[i][1]*half})
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}

// segNormal 线段单位法向量
func segNormal(a, b orb.Point) (float64, float64) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	l := math.Sqrt(dx*dx + dy*dy)
	if l == 0 {
		return 0, 0
	}
	return -dy / l, dx / l
}
