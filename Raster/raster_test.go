package Raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/GrainArc/TerraSection/Tin"
)

func TestGridSourceSample(t *testing.T) {
	g := &GridSource{
		Name:      "test",
		OriginX:   0,
		OriginY:   100,
		CellSize:  10,
		NoDataVal: -9999,
		HasNoData: true,
		Data: [][]float64{
			{1, 2, 3},
			{4, -9999, 6},
			{7, 8, 9},
		},
	}

	// 左上角第一个像元
	v, st, err := g.Sample(5, 95)
	if err != nil || st != Hit || v != 1 {
		t.Errorf("左上像元应命中值1，实际v=%v st=%v err=%v", v, st, err)
	}

	// 第三行第三列
	v, st, _ = g.Sample(25, 75)
	if st != Hit || v != 9 {
		t.Errorf("(25,75)应命中值9，实际v=%v st=%v", v, st)
	}

	// NoData像元
	_, st, _ = g.Sample(15, 85)
	if st != NoData {
		t.Errorf("NoData像元状态应为NoData，实际%v", st)
	}

	// 范围外
	_, st, _ = g.Sample(-5, 95)
	if st != OutOfExtent {
		t.Errorf("范围外状态应为OutOfExtent，实际%v", st)
	}
	_, st, _ = g.Sample(5, 105)
	if st != OutOfExtent {
		t.Errorf("栅格上方状态应为OutOfExtent，实际%v", st)
	}
}

func TestGridSourceNaNCell(t *testing.T) {
	g := &GridSource{
		Name:     "nan",
		OriginX:  0,
		OriginY:  10,
		CellSize: 10,
		Data:     [][]float64{{math.NaN()}},
	}
	_, st, _ := g.Sample(5, 5)
	if st != NoData {
		t.Errorf("NaN像元状态应为NoData，实际%v", st)
	}
}

func TestLonLatToTileRoundTrip(t *testing.T) {
	lon, lat := 104.06, 30.67
	zoom := int64(12)
	x, y := LonLatToTile(lon, lat, zoom)

	topLeft, _, bottomLeft, bottomRight := TileToLatLon(int(zoom), int(x), int(y))
	if lon < topLeft[0] || lon > bottomRight[0] {
		t.Errorf("经度%v应落在瓦片经度范围[%v,%v]内", lon, topLeft[0], bottomRight[0])
	}
	if lat > topLeft[1] || lat < bottomLeft[1] {
		t.Errorf("纬度%v应落在瓦片纬度范围[%v,%v]内", lat, bottomLeft[1], topLeft[1])
	}
}

func TestLonLatToTileClamp(t *testing.T) {
	x, y := LonLatToTile(-200, 30, 4)
	if x != 0 {
		t.Errorf("越界经度应钳到0列，实际%d", x)
	}
	maxTile := int64(math.Exp2(4)) - 1
	x, _ = LonLatToTile(200, 30, 4)
	if x != maxTile {
		t.Errorf("越界经度应钳到%d列，实际%d", maxTile, x)
	}
	_ = y
}

func TestRGBToElevation(t *testing.T) {
	// 全零像素应为-10000
	if v := RGBToElevation(0, 0, 0); v != -10000 {
		t.Errorf("RGB(0,0,0)应为-10000，实际%v", v)
	}
	// (1,134,160)按公式为 (65536+34304+160)*0.1-10000 = 0
	if v := RGBToElevation(1, 134, 160); math.Abs(v) > 1e-9 {
		t.Errorf("RGB(1,134,160)应为0，实际%v", v)
	}
}

func TestSourceFunc(t *testing.T) {
	s := SourceFunc{
		Name: "synthetic",
		Fn: func(x, y float64) (float64, Status, error) {
			return x + y, Hit, nil
		},
	}
	if s.ID() != "synthetic" {
		t.Errorf("ID错误: %v", s.ID())
	}
	v, st, _ := s.Sample(3, 4)
	if st != Hit || v != 7 {
		t.Errorf("合成数据源采样错误: v=%v st=%v", v, st)
	}
}

// 编码一块纯色terrain-RGB瓦片
func encodeTile(t *testing.T, r, g, b uint8) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, 256, 256))
	c := color.NRGBA{R: r, G: g, B: b, A: 255}
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("瓦片编码失败: %v", err)
	}
	return buf.Bytes()
}

func TestTerrainRGBSource(t *testing.T) {
	lon, lat := 104.06, 30.67
	zoom := int64(10)
	x, y := LonLatToTile(lon, lat, zoom)

	src := &TerrainRGBSource{Name: "rgb", Zoom: zoom}
	// RGB(1,134,160)解码为高程0
	if err := src.AddTile(x, y, encodeTile(t, 1, 134, 160)); err != nil {
		t.Fatalf("AddTile失败: %v", err)
	}

	v, st, err := src.Sample(lon, lat)
	if err != nil || st != Hit {
		t.Fatalf("采样应命中: st=%v err=%v", st, err)
	}
	if math.Abs(v) > 1e-9 {
		t.Errorf("高程应为0，实际%v", v)
	}

	// 没有瓦片覆盖的位置
	_, st, _ = src.Sample(0, 0)
	if st != OutOfExtent {
		t.Errorf("无瓦片处状态应为OutOfExtent，实际%v", st)
	}
}

func TestDecodeTileImageUnknown(t *testing.T) {
	if _, _, err := DecodeTileImage([]byte{1, 2, 3}); err == nil {
		t.Error("无法识别的数据应返回错误")
	}
}

func TestTinSourceSample(t *testing.T) {
	var pts []*Tin.Point3D
	for x := 0.0; x <= 100; x += 50 {
		for y := 0.0; y <= 100; y += 50 {
			pts = append(pts, &Tin.Point3D{X: x, Y: y, Z: x / 10})
		}
	}
	src := NewTinSource("tin", pts)

	v, st, _ := src.Sample(50, 50)
	if st != Hit || math.Abs(v-5) > 1e-6 {
		t.Errorf("三角网内插值应为5，实际v=%v st=%v", v, st)
	}

	_, st, _ = src.Sample(1000, 1000)
	if st != OutOfExtent {
		t.Errorf("网外点状态应为OutOfExtent，实际%v", st)
	}
}
