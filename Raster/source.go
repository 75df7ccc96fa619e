package Raster

// 栅格数据源抽象：剖面提取逻辑只关心"给定平面坐标取一个高程值"，
// 具体数据从GDAL栅格、MBTiles地形瓦片还是TIN来由实现决定

// Status 单点采样结果状态
type Status int

const (
	// Hit 命中有效像元
	Hit Status = iota
	// OutOfExtent 采样点落在栅格范围之外
	OutOfExtent
	// NoData 像元值等于NoData标记
	NoData
)

// RasterSource 高程数据源。Sample返回的value仅在status==Hit时有意义，
// OutOfExtent和NoData不是错误，err只表示数据源本身不可用
type RasterSource interface {
	ID() string
	Sample(x, y float64) (value float64, status Status, err error)
}

// SourceFunc 把函数适配成RasterSource，测试时构造合成地形用
type SourceFunc struct {
	Name string
	Fn   func(x, y float64) (float64, Status, error)
}

func (s SourceFunc) ID() string {
	return s.Name
}

func (s SourceFunc) Sample(x, y float64) (float64, Status, error) {
	return s.Fn(x, y)
}
