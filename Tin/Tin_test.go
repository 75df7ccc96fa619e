package Tin

import (
	"math"
	"testing"
)

func makeSlopePoints() []*Point3D {
	// z = x 的斜面，网格散点
	var pts []*Point3D
	id := 0
	for x := 0.0; x <= 100; x += 25 {
		for y := 0.0; y <= 100; y += 25 {
			pts = append(pts, &Point3D{X: x, Y: y, Z: x, ID: id})
			id++
		}
	}
	return pts
}

func TestBuildTIN(t *testing.T) {
	tin := BuildTIN(makeSlopePoints())
	if len(tin.Triangles) == 0 {
		t.Fatal("三角剖分结果为空")
	}
	for _, tri := range tin.Triangles {
		if tri.P1.ID < 0 || tri.P2.ID < 0 || tri.P3.ID < 0 {
			t.Errorf("结果中残留超级三角形顶点: %+v", tri)
		}
	}
}

func TestBuildTINTooFewPoints(t *testing.T) {
	tin := BuildTIN([]*Point3D{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 2}})
	if len(tin.Triangles) != 0 {
		t.Errorf("两个点不应产生三角形，实际%d个", len(tin.Triangles))
	}
}

func TestElevationAtInterpolation(t *testing.T) {
	tin := BuildTIN(makeSlopePoints())

	// 斜面z=x上任意内部点的插值应等于其x坐标
	cases := [][2]float64{{50, 50}, {30, 70}, {12.5, 12.5}, {80, 20}}
	for _, c := range cases {
		z, ok := tin.ElevationAt(c[0], c[1])
		if !ok {
			t.Errorf("点(%v,%v)应落在网内", c[0], c[1])
			continue
		}
		if math.Abs(z-c[0]) > 1e-6 {
			t.Errorf("点(%v,%v)插值应为%v，实际%v", c[0], c[1], c[0], z)
		}
	}
}

func TestElevationAtOutside(t *testing.T) {
	tin := BuildTIN(makeSlopePoints())
	if _, ok := tin.ElevationAt(500, 500); ok {
		t.Error("网外点不应命中")
	}
}

func TestTriangleArea(t *testing.T) {
	tri := Triangle3D{
		P1: &Point3D{X: 0, Y: 0, Z: 0},
		P2: &Point3D{X: 4, Y: 0, Z: 0},
		P3: &Point3D{X: 0, Y: 3, Z: 0},
	}
	if math.Abs(tri.Area()-6) > 1e-9 {
		t.Errorf("直角三角形面积应为6，实际%v", tri.Area())
	}
}

func TestSurfaceAreaFlat(t *testing.T) {
	// 平面网格的表面积应等于平面范围面积
	var pts []*Point3D
	for x := 0.0; x <= 10; x += 5 {
		for y := 0.0; y <= 10; y += 5 {
			pts = append(pts, &Point3D{X: x, Y: y, Z: 7})
		}
	}
	tin := BuildTIN(pts)
	if math.Abs(tin.SurfaceArea()-100) > 1e-6 {
		t.Errorf("平面三角网表面积应为100，实际%v", tin.SurfaceArea())
	}

	minZ, maxZ := tin.ElevationRange()
	if minZ != 7 || maxZ != 7 {
		t.Errorf("高程范围应为[7,7]，实际[%v,%v]", minZ, maxZ)
	}
}
