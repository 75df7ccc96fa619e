package Tin

import "math"

// 三角网高程查询

// barycentric 计算点在三角形XY投影内的重心坐标
func barycentric(t *Triangle3D, x, y float64) (w1, w2, w3 float64, ok bool) {
	x1, y1 := t.P1.X, t.P1.Y
	x2, y2 := t.P2.X, t.P2.Y
	x3, y3 := t.P3.X, t.P3.Y

	det := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if math.Abs(det) < 1e-12 {
		return 0, 0, 0, false
	}

	w1 = ((y2-y3)*(x-x3) + (x3-x2)*(y-y3)) / det
	w2 = ((y3-y1)*(x-x3) + (x1-x3)*(y-y3)) / det
	w3 = 1 - w1 - w2

	const eps = 1e-9
	if w1 < -eps || w2 < -eps || w3 < -eps {
		return 0, 0, 0, false
	}
	return w1, w2, w3, true
}

// ElevationAt 在三角网上按重心坐标插值取高程，
// 点落在网外时ok为false
func (tin *TIN3D) ElevationAt(x, y float64) (float64, bool) {
	for _, t := range tin.Triangles {
		if w1, w2, w3, ok := barycentric(t, x, y); ok {
			return w1*t.P1.Z + w2*t.P2.Z + w3*t.P3.Z, true
		}
	}
	return math.NaN(), false
}

// SurfaceArea 三角网总表面积
func (tin *TIN3D) SurfaceArea() float64 {
	var total float64
	for _, t := range tin.Triangles {
		total += t.Area()
	}
	return total
}

// ElevationRange 三角网高程范围
func (tin *TIN3D) ElevationRange() (minZ, maxZ float64) {
	if len(tin.Points) == 0 {
		return math.NaN(), math.NaN()
	}
	minZ, maxZ = tin.Points[0].Z, tin.Points[0].Z
	for _, p := range tin.Points {
		if p.Z < minZ {
			minZ = p.Z
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}
	return minZ, maxZ
}
