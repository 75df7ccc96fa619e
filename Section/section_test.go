package Section

import (
	"errors"
	"math"
	"testing"

	"github.com/GrainArc/TerraSection/models"
	"github.com/paulmach/orb"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStraight(t *testing.T) {
	p, err := Straight(orb.Point{0, 0}, orb.Point{100, 50})
	if err != nil {
		t.Fatalf("Straight失败: %v", err)
	}
	if p.Kind() != models.PathStraight {
		t.Errorf("类型应为straight，实际%v", p.Kind())
	}
	if len(p.Centerline()) != 2 {
		t.Errorf("中心线应有2个顶点")
	}

	if _, err := Straight(orb.Point{1, 1}, orb.Point{1, 1}); !errors.Is(err, models.ErrInvalidGeometry) {
		t.Errorf("全重合顶点应返回ErrInvalidGeometry，实际: %v", err)
	}
}

func TestOffsetPairHorizontal(t *testing.T) {
	pair, err := OffsetPair(orb.Point{0, 0}, orb.Point{100, 0}, 10)
	if err != nil {
		t.Fatalf("OffsetPair失败: %v", err)
	}
	// 水平中心线的垂向是y方向，主线+10，副线-10
	if !almostEqual(pair.Primary.Points[0][1], 10) || !almostEqual(pair.Primary.Points[1][1], 10) {
		t.Errorf("主线y坐标错误: %v", pair.Primary.Points)
	}
	if !almostEqual(pair.Secondary.Points[0][1], -10) || !almostEqual(pair.Secondary.Points[1][1], -10) {
		t.Errorf("副线y坐标错误: %v", pair.Secondary.Points)
	}
	if !almostEqual(pair.Primary.Points[0][0], 0) || !almostEqual(pair.Primary.Points[1][0], 100) {
		t.Errorf("偏移不应改变x坐标: %v", pair.Primary.Points)
	}
}

func TestOffsetPairDiagonal(t *testing.T) {
	d := 5.0
	pair, err := OffsetPair(orb.Point{0, 0}, orb.Point{100, 100}, d)
	if err != nil {
		t.Fatalf("OffsetPair失败: %v", err)
	}
	// 两线间距应为2d，且均与中心线平行
	p := pair.Primary.Points[0]
	s := pair.Secondary.Points[0]
	gap := math.Hypot(p[0]-s[0], p[1]-s[1])
	if !almostEqual(gap, 2*d) {
		t.Errorf("平行线间距应为%v，实际%v", 2*d, gap)
	}
}

func TestOffsetPairRoundTrip(t *testing.T) {
	d := 7.0
	pair, err := OffsetPair(orb.Point{3, 4}, orb.Point{80, 60}, d)
	if err != nil {
		t.Fatalf("OffsetPair失败: %v", err)
	}
	// 主线再反向偏移d应回到原中心线
	back, err := OffsetPair(pair.Primary.Points[0], pair.Primary.Points[1], d)
	if err != nil {
		t.Fatalf("反向偏移失败: %v", err)
	}
	for i := range back.Secondary.Points {
		orig := pair.Center.Points[i]
		got := back.Secondary.Points[i]
		if math.Abs(got[0]-orig[0]) > 1e-9 || math.Abs(got[1]-orig[1]) > 1e-9 {
			t.Errorf("往返偏移第%d个端点应重合原中心线: %v != %v", i, got, orig)
		}
	}
}

func TestOffsetPairZeroLength(t *testing.T) {
	_, err := OffsetPair(orb.Point{3, 3}, orb.Point{3, 3}, 10)
	if !errors.Is(err, models.ErrInvalidGeometry) {
		t.Errorf("零长度中心线应返回ErrInvalidGeometry，实际: %v", err)
	}
}

func TestDecomposePolygon(t *testing.T) {
	ring := []orb.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	sides, err := DecomposePolygon(ring, 4)
	if err != nil {
		t.Fatalf("DecomposePolygon失败: %v", err)
	}
	if len(sides) != 4 {
		t.Fatalf("正方形应分解为4条边，实际%d条", len(sides))
	}
	total := 0.0
	for i, s := range sides {
		if s.SideIndex != i {
			t.Errorf("边序号应保持顶点顺序，第%d条边序号为%d", i, s.SideIndex)
		}
		if s.PolygonID != sides[0].PolygonID {
			t.Errorf("同一多边形的边应共享PolygonID")
		}
		total += math.Hypot(s.Points[1][0]-s.Points[0][0], s.Points[1][1]-s.Points[0][1])
	}
	if !almostEqual(total, 40) {
		t.Errorf("边长之和应等于周长40，实际%v", total)
	}
	if !almostEqual(Perimeter(ring), 40) {
		t.Errorf("Perimeter应为40，实际%v", Perimeter(ring))
	}
}

func TestDecomposePolygonTooFewVertices(t *testing.T) {
	_, err := DecomposePolygon([]orb.Point{{0, 0}, {10, 0}, {0, 0}}, 4)
	if !errors.Is(err, models.ErrInvalidGeometry) {
		t.Errorf("两个顶点应返回ErrInvalidGeometry，实际: %v", err)
	}
}

func TestFreehandCenterline(t *testing.T) {
	line := orb.LineString{{0, 0}, {50, 20}, {100, 0}}
	fh, err := Freehand(line, 10)
	if err != nil {
		t.Fatalf("Freehand失败: %v", err)
	}
	// 采样中心线必须就是输入折线本身
	if len(fh.Line) != len(line) {
		t.Fatalf("中心线顶点数改变")
	}
	for i := range line {
		if fh.Line[i] != line[i] {
			t.Errorf("第%d个中心线顶点被改动: %v", i, fh.Line[i])
		}
	}
	if len(fh.Buffer) == 0 || len(fh.Buffer[0]) < 2*len(line) {
		t.Errorf("缓冲多边形顶点数不足: %v", fh.Buffer)
	}
}

func TestRectangleCorners(t *testing.T) {
	rect, err := Rectangle(orb.Point{0, 0}, orb.Point{100, 0}, 20)
	if err != nil {
		t.Fatalf("Rectangle失败: %v", err)
	}
	if len(rect.Corners) != 5 {
		t.Fatalf("矩形角环应有5个点(闭合)，实际%d", len(rect.Corners))
	}
	// 四角y坐标为±10
	for i, c := range rect.Corners[:4] {
		if !almostEqual(math.Abs(c[1]), 10) {
			t.Errorf("第%d个角点y坐标应为±10，实际%v", i, c[1])
		}
	}
	if rect.Corners[0] != rect.Corners[4] {
		t.Errorf("角环应闭合")
	}
}

func TestLineFromGeoJSON(t *testing.T) {
	data := []byte(`{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[100,50]]},"properties":{}}`)
	line, err := LineFromGeoJSON(data)
	if err != nil {
		t.Fatalf("LineFromGeoJSON失败: %v", err)
	}
	if len(line) != 2 || line[1][0] != 100 {
		t.Errorf("解析结果错误: %v", line)
	}

	bad := []byte(`{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{}}`)
	if _, err := LineFromGeoJSON(bad); !errors.Is(err, models.ErrInvalidGeometry) {
		t.Errorf("Point几何应返回ErrInvalidGeometry，实际: %v", err)
	}
}
