package Raster

import "math"

// Web墨卡托XYZ瓦片坐标计算

const (
	earthRadius = 6378137.0
	originShift = 2 * math.Pi * earthRadius / 2.0
)

// LonLatToTile 经纬度转指定层级的瓦片行列号
func LonLatToTile(lon, lat float64, zoom int64) (x, y int64) {
	// 1. 先转换为Web墨卡托坐标
	mercX := lon * originShift / 180.0
	mercY := math.Log(math.Tan((90+lat)*math.Pi/360.0)) * originShift / math.Pi

	// 2. 计算瓦片坐标
	resolution := (2 * originShift) / math.Exp2(float64(zoom))
	x = int64(math.Floor((mercX + originShift) / resolution))
	y = int64(math.Floor((originShift - mercY) / resolution))

	// 3. 处理边界情况
	maxTile := int64(math.Exp2(float64(zoom))) - 1
	if x < 0 {
		x = 0
	} else if x > maxTile {
		x = maxTile
	}
	if y < 0 {
		y = 0
	} else if y > maxTile {
		y = maxTile
	}
	return x, y
}

func pixelToLatLon(px, py, z int) [2]float64 {
	// 将像素坐标转换为经纬度
	tileSize := 256
	mapSize := tileSize * int(math.Pow(2, float64(z)))
	lonDeg := float64(px)/float64(mapSize)*360.0 - 180.0
	latRad := math.Atan(math.Sinh(math.Pi * (1 - 2*float64(py)/float64(mapSize))))
	latDeg := latRad * 180.0 / math.Pi
	var data [2]float64
	data[0] = lonDeg
	data[1] = latDeg
	return data
}

// TileToLatLon 瓦片四个角的经纬度
func TileToLatLon(z, x, y int) (topLeft, topRight, bottomLeft, bottomRight [2]float64) {
	tileSize := 256
	// 计算瓦片四个角的像素坐标
	topLeftPx := x * tileSize
	topLeftPy := y * tileSize
	bottomRightPx := (x + 1) * tileSize
	bottomRightPy := (y + 1) * tileSize
	// 计算并返回四个角的经纬度
	topLeft = pixelToLatLon(topLeftPx, topLeftPy, z)
	topRight = pixelToLatLon(bottomRightPx, topLeftPy, z)
	bottomLeft = pixelToLatLon(topLeftPx, bottomRightPy, z)
	bottomRight = pixelToLatLon(bottomRightPx, bottomRightPy, z)
	return topLeft, topRight, bottomLeft, bottomRight
}
