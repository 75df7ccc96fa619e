package Raster

import (
	"fmt"
	"math"

	"github.com/GrainArc/Gogeo"
	"github.com/GrainArc/TerraSection/models"
)

// GogeoSource 本地GDAL栅格文件数据源。
// 波段数据在打开时整块读入内存，之后的采样只是数组访问
type GogeoSource struct {
	grid GridSource
	epsg int
}

// OpenGogeoSource 打开栅格文件并读取第一波段，
// 原点与像元大小取自文件自带的GeoTransform
func OpenGogeoSource(path string) (*GogeoSource, error) {
	rd, err := Gogeo.OpenRasterDataset(path, false)
	if err != nil {
		return nil, fmt.Errorf("%w: 打开栅格文件失败: %v", models.ErrSourceUnavailable, err)
	}
	defer rd.Close()

	if rd.GetBandCount() < 1 {
		return nil, fmt.Errorf("%w: 栅格没有波段", models.ErrSourceUnavailable)
	}

	rdInfo := rd.GetInfo()
	if !rdInfo.HasGeoInfo {
		return nil, fmt.Errorf("%w: 栅格缺少地理参考信息", models.ErrSourceUnavailable)
	}

	info, err := rd.GetBandInfo(1)
	if err != nil {
		return nil, fmt.Errorf("%w: 获取波段信息失败: %v", models.ErrSourceUnavailable, err)
	}

	calc := rd.NewBandCalculator()
	data, err := calc.Calculate("B1")
	if err != nil {
		return nil, fmt.Errorf("%w: 读取波段数据失败: %v", models.ErrSourceUnavailable, err)
	}

	gt := rdInfo.GeoTransform
	return &GogeoSource{
		grid: GridSource{
			Name:      path,
			OriginX:   gt[0],
			OriginY:   gt[3],
			CellSize:  gt[1],
			NoDataVal: info.NoDataValue,
			HasNoData: info.HasNoData,
			Data:      data,
		},
		epsg: rd.GetEPSGCode(),
	}, nil
}

func (g *GogeoSource) ID() string {
	return g.grid.Name
}

func (g *GogeoSource) EPSG() int {
	return g.epsg
}

func (g *GogeoSource) Sample(x, y float64) (float64, Status, error) {
	v, st, err := g.grid.Sample(x, y)
	if err != nil {
		return math.NaN(), st, err
	}
	return v, st, nil
}
