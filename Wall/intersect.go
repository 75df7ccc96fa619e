package Wall

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/golang/geo/r3"
)

// 墙与墙的三维相交：四边形拆三角形，R树粗筛候选对，
// 三角形边与对方三角形逐对求交，交点去重后贪心串联成折线

const (
	// 三角形求交的数值容差
	intersectEps = 1e-12
	// 交点去重的坐标量化因子
	dedupScale = 1e6
)

// Triangle 三维三角形
type Triangle struct {
	A, B, C r3.Vector
}

// Triangles 面片拆分为三角形，四边形沿对角线分两片
func (m *Mesh) Triangles() []Triangle {
	out := make([]Triangle, 0, 2*len(m.Faces))
	for _, f := range m.Faces {
		v0, v1, v2, v3 := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]], m.Vertices[f[3]]
		out = append(out, Triangle{A: v0, B: v1, C: v2})
		out = append(out, Triangle{A: v0, B: v2, C: v3})
	}
	return out
}

// IntersectionResult 两墙交线。Points为去重后的原始交点，
// OrderedCurve为贪心串联后的折线顶点序
type IntersectionResult struct {
	MeshIDs      [2]string   `json:"mesh_ids"`
	Points       []r3.Vector `json:"points"`
	OrderedCurve []r3.Vector `json:"ordered_curve"`
}

// Empty 是否没有交点
func (r *IntersectionResult) Empty() bool {
	return len(r.Points) == 0
}

// Length 交线折线长度
func (r *IntersectionResult) Length() float64 {
	total := 0.0
	for i := 1; i < len(r.OrderedCurve); i++ {
		total += r.OrderedCurve[i].Sub(r.OrderedCurve[i-1]).Norm()
	}
	return total
}

// treeTriangle 带包围盒的三角形，供R树索引
type treeTriangle struct {
	tri  Triangle
	rect rtreego.Rect
}

func (t *treeTriangle) Bounds() rtreego.Rect {
	return t.rect
}

func triangleRect(t Triangle) rtreego.Rect {
	minX := math.Min(t.A.X, math.Min(t.B.X, t.C.X))
	minY := math.Min(t.A.Y, math.Min(t.B.Y, t.C.Y))
	minZ := math.Min(t.A.Z, math.Min(t.B.Z, t.C.Z))
	maxX := math.Max(t.A.X, math.Max(t.B.X, t.C.X))
	maxY := math.Max(t.A.Y, math.Max(t.B.Y, t.C.Y))
	maxZ := math.Max(t.A.Z, math.Max(t.B.Z, t.C.Z))

	// 退化方向也要有正的边长，R树不接受零尺寸矩形
	const pad = 1e-9
	lengths := []float64{
		math.Max(maxX-minX, pad),
		math.Max(maxY-minY, pad),
		math.Max(maxZ-minZ, pad),
	}
	rect, err := rtreego.NewRect(rtreego.Point{minX, minY, minZ}, lengths)
	if err != nil {
		// pad保证三个边长均为正，NewRect不应失败
		panic(fmt.Sprintf("三角形包围盒构造失败: %v", err))
	}
	return rect
}

// segmentTriangle 线段与三角形求交（Möller-Trumbore），
// 命中时返回交点
func segmentTriangle(p0, p1 r3.Vector, t Triangle) (r3.Vector, bool) {
	dir := p1.Sub(p0)
	e1 := t.B.Sub(t.A)
	e2 := t.C.Sub(t.A)

	h := dir.Cross(e2)
	det := e1.Dot(h)
	if math.Abs(det) < intersectEps {
		return r3.Vector{}, false
	}

	inv := 1.0 / det
	s := p0.Sub(t.A)
	u := inv * s.Dot(h)
	if u < -intersectEps || u > 1+intersectEps {
		return r3.Vector{}, false
	}

	q := s.Cross(e1)
	v := inv * dir.Dot(q)
	if v < -intersectEps || u+v > 1+intersectEps {
		return r3.Vector{}, false
	}

	tt := inv * e2.Dot(q)
	if tt < -intersectEps || tt > 1+intersectEps {
		return r3.Vector{}, false
	}

	return p0.Add(dir.Mul(tt)), true
}

// triangleTriangle 两三角形的交点：双方的边互相对对方求交
func triangleTriangle(a, b Triangle) []r3.Vector {
	var pts []r3.Vector
	edgesA := [3][2]r3.Vector{{a.A, a.B}, {a.B, a.C}, {a.C, a.A}}
	edgesB := [3][2]r3.Vector{{b.A, b.B}, {b.B, b.C}, {b.C, b.A}}

	for _, e := range edgesA {
		if p, ok := segmentTriangle(e[0], e[1], b); ok {
			pts = append(pts, p)
		}
	}
	for _, e := range edgesB {
		if p, ok := segmentTriangle(e[0], e[1], a); ok {
			pts = append(pts, p)
		}
	}
	return pts
}

// Intersect 计算两墙交线。无交时结果Points为空
func Intersect(a, b *Mesh) IntersectionResult {
	ids := [2]string{a.ID, b.ID}
	trisA := a.Triangles()
	trisB := b.Triangles()
	if len(trisA) == 0 || len(trisB) == 0 {
		return IntersectionResult{MeshIDs: ids}
	}

	// B的三角形建R树索引，A逐三角形查候选
	tree := rtreego.NewTree(3, 25, 50)
	for i := range trisB {
		tree.Insert(&treeTriangle{tri: trisB[i], rect: triangleRect(trisB[i])})
	}

	seen := make(map[[3]int64]bool)
	var points []r3.Vector
	for _, ta := range trisA {
		for _, hit := range tree.SearchIntersect(triangleRect(ta)) {
			tb := hit.(*treeTriangle).tri
			for _, p := range triangleTriangle(ta, tb) {
				key := [3]int64{
					int64(math.Round(p.X * dedupScale)),
					int64(math.Round(p.Y * dedupScale)),
					int64(math.Round(p.Z * dedupScale)),
				}
				if seen[key] {
					continue
				}
				seen[key] = true
				points = append(points, p)
			}
		}
	}

	return IntersectionResult{
		MeshIDs:      ids,
		Points:       points,
		OrderedCurve: chainPoints(points),
	}
}

// chainPoints 从首个交点出发，每步取最近的未访问交点串成折线。
// 分叉交线下这种贪心不保证全局最优，结果仍覆盖全部交点
func chainPoints(points []r3.Vector) []r3.Vector {
	if len(points) <= 2 {
		return points
	}

	used := make([]bool, len(points))
	chain := make([]r3.Vector, 0, len(points))
	cur := 0
	used[0] = true
	chain = append(chain, points[0])

	for len(chain) < len(points) {
		best := -1
		bestDist := math.Inf(1)
		for i := range points {
			if used[i] {
				continue
			}
			d := points[i].Sub(points[cur]).Norm()
			if d < bestDist {
				bestDist = d
				best = i
			}
		}
		used[best] = true
		chain = append(chain, points[best])
		cur = best
	}
	return chain
}

// IntersectionAngle 两墙在平面上的夹角（度，0~90）。
// 墙向取上边缘首末顶点连线
func IntersectionAngle(a, b *Mesh) float64 {
	da := wallDirection(a)
	db := wallDirection(b)
	la := math.Hypot(da[0], da[1])
	lb := math.Hypot(db[0], db[1])
	if la == 0 || lb == 0 {
		return 0
	}
	cos := math.Abs(da[0]*db[0]+da[1]*db[1]) / (la * lb)
	if cos > 1 {
		cos = 1
	}
	return math.Acos(cos) * 180 / math.Pi
}

func wallDirection(m *Mesh) [2]float64 {
	n := m.TopCount()
	if n < 2 {
		return [2]float64{}
	}
	first := m.Vertices[0]
	last := m.Vertices[n-1]
	return [2]float64{last.X - first.X, last.Y - first.Y}
}
