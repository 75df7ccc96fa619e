package Raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/chai2010/webp"
)

// Mapbox terrain-RGB瓦片解码

// DecodeTileImage 自动检测并解码瓦片图片
func DecodeTileImage(data []byte) (image.Image, string, error) {
	// 先尝试WebP解码（Mapbox常用）
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, "webp", nil
	}

	// 再尝试PNG/JPEG解码
	if img, format, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, format, nil
	}

	return nil, "unknown", fmt.Errorf("无法识别的图片格式")
}

// 统一获取RGB值
func getRGB(c color.Color) (r, g, b uint8) {
	switch color := c.(type) {
	case color.NRGBA:
		return color.R, color.G, color.B
	case color.RGBA:
		return color.R, color.G, color.B
	default:
		r32, g32, b32, _ := c.RGBA()
		return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
	}
}

// RGBToElevation 高程计算公式（Mapbox官方算法）
func RGBToElevation(r, g, b uint8) float64 {
	// 公式：height = (R * 256² + G * 256 + B) * 0.1 - 10000
	return (float64(r)*65536+float64(g)*256+float64(b))*0.1 - 10000
}

// TerrainRGBSource 内存中的terrain-RGB瓦片集，固定层级，
// 采样坐标是WGS84经纬度
type TerrainRGBSource struct {
	Name  string
	Zoom  int64
	Tiles map[[2]int64]image.Image
}

func (t *TerrainRGBSource) ID() string {
	return t.Name
}

// AddTile 解码并登记一块瓦片
func (t *TerrainRGBSource) AddTile(x, y int64, data []byte) error {
	img, _, err := DecodeTileImage(data)
	if err != nil {
		return err
	}
	if t.Tiles == nil {
		t.Tiles = make(map[[2]int64]image.Image)
	}
	t.Tiles[[2]int64{x, y}] = img
	return nil
}

// Sample 按经纬度采样高程，瓦片缺失视为范围外
func (t *TerrainRGBSource) Sample(lon, lat float64) (float64, Status, error) {
	x, y := LonLatToTile(lon, lat, t.Zoom)
	img, ok := t.Tiles[[2]int64{x, y}]
	if !ok {
		return math.NaN(), OutOfExtent, nil
	}
	v, ok := elevationAtPixel(img, lon, lat, int(t.Zoom), int(x), int(y))
	if !ok {
		return math.NaN(), OutOfExtent, nil
	}
	return v, Hit, nil
}

// elevationAtPixel 从瓦片图片中按经纬度比例取高程
func elevationAtPixel(img image.Image, lon, lat float64, z, tileX, tileY int) (float64, bool) {
	topLeft, _, bottomLeft, bottomRight := TileToLatLon(z, tileX, tileY)

	tileLeft := topLeft[0]
	tileRight := bottomRight[0]
	tileTop := topLeft[1]
	tileBottom := bottomLeft[1]
	lonRatio := (lon - tileLeft) / (tileRight - tileLeft)
	latRatio := (tileTop - lat) / (tileTop - tileBottom)

	bounds := img.Bounds()
	width := bounds.Max.X - bounds.Min.X
	height := bounds.Max.Y - bounds.Min.Y

	x := bounds.Min.X + int(float64(width)*lonRatio)
	y := bounds.Min.Y + int(float64(height)*latRatio)
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return 0, false
	}

	r, g, b := getRGB(img.At(x, y))
	return RGBToElevation(r, g, b), true
}
