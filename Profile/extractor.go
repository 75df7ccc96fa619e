package Profile

import (
	"math"
	"sync"

	"github.com/GrainArc/TerraSection/Raster"
	"github.com/GrainArc/TerraSection/config"
	"github.com/GrainArc/TerraSection/models"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// 剖面提取：桩号坐标逐点采样高程。
// 范围外与NoData统一记为NaN，数据源故障整次提取报错

// Extractor 剖面提取器，Workers为并发采样的worker数
type Extractor struct {
	Workers int
}

// NewExtractor 按配置的worker数构造提取器
func NewExtractor() *Extractor {
	return &Extractor{Workers: config.Workers}
}

func (e *Extractor) workers() int {
	if e.Workers <= 0 {
		return 1
	}
	return e.Workers
}

// sampleCount 采样数不合法时退回配置默认值
func sampleCount(samples int) int {
	if samples < 2 {
		return config.Samples
	}
	return samples
}

// Extract 沿桩号序列采样高程生成剖面，
// 任一采样返回数据源错误时整次提取失败
func (e *Extractor) Extract(source Raster.RasterSource, stations []models.Station) (models.Profile, error) {
	type task struct {
		index int
		x     float64
		y     float64
	}

	type result struct {
		index int
		z     float64
		err   error
	}

	// 创建带缓冲的channel
	tasks := make(chan task, len(stations))
	results := make(chan result, len(stations))

	// 创建固定数量的worker
	var wg sync.WaitGroup
	for i := 0; i < e.workers(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				v, status, err := source.Sample(t.x, t.y)
				if err != nil {
					results <- result{t.index, math.NaN(), err}
					continue
				}
				if status != Raster.Hit {
					results <- result{t.index, math.NaN(), nil}
					continue
				}
				results <- result{t.index, v, nil}
			}
		}()
	}

	// 发送任务
	go func() {
		for _, s := range stations {
			tasks <- task{index: s.Index, x: s.X, y: s.Y}
		}
		close(tasks)
	}()

	// 等待全部worker结束后关闭结果channel
	go func() {
		wg.Wait()
		close(results)
	}()

	elevations := make([]float64, len(stations))
	var firstErr error
	for r := range results {
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		elevations[r.index] = r.z
	}
	if firstErr != nil {
		return models.Profile{}, firstErr
	}

	return models.Profile{
		SourceID:   source.ID(),
		Stations:   stations,
		Elevations: elevations,
	}, nil
}

// ExtractLine 同一折线上叠加多个数据源，桩号只算一次，
// 每个数据源得到一条剖面
func (e *Extractor) ExtractLine(sources []Raster.RasterSource, line orb.LineString, samples int) (*models.SingleSet, error) {
	stations, err := Stations(line, sampleCount(samples))
	if err != nil {
		return nil, err
	}

	set := &models.SingleSet{}
	for _, src := range sources {
		p, err := e.Extract(src, stations)
		if err != nil {
			return nil, err
		}
		set.Profiles = append(set.Profiles, p)
	}
	return set, nil
}

// ExtractPair 对平行断面对的主副两线分别提取剖面。
// singleProfile为true时只提取主线，副剖面为nil
func (e *Extractor) ExtractPair(source Raster.RasterSource, path models.OffsetPairPath, samples int, singleProfile bool) (*models.DualSet, error) {
	return e.ExtractPairMulti([]Raster.RasterSource{source}, path, samples, singleProfile)
}

// ExtractPairMulti 同一断面对上叠加多个数据源的剖面
func (e *Extractor) ExtractPairMulti(sources []Raster.RasterSource, path models.OffsetPairPath, samples int, singleProfile bool) (*models.DualSet, error) {
	samples = sampleCount(samples)
	primaryStations, err := Stations(path.Primary.Points, samples)
	if err != nil {
		return nil, err
	}

	set := &models.DualSet{Path: path}
	for _, src := range sources {
		p, err := e.Extract(src, primaryStations)
		if err != nil {
			return nil, err
		}
		set.Primary = append(set.Primary, p)
	}

	if !singleProfile {
		secondaryStations, err := Stations(path.Secondary.Points, samples)
		if err != nil {
			return nil, err
		}
		for _, src := range sources {
			p, err := e.Extract(src, secondaryStations)
			if err != nil {
				return nil, err
			}
			set.Secondary = append(set.Secondary, p)
		}
	}

	return set, nil
}

// ExtractMultiSection 对多边形分解出的每条边提取剖面，边序与输入一致。
// 任一条边失败则整个集合不返回
func (e *Extractor) ExtractMultiSection(source Raster.RasterSource, sides []models.PolygonSidePath, samples int) (*models.MultiSectionSet, error) {
	set := &models.MultiSectionSet{ID: uuid.New().String()}
	if len(sides) > 0 {
		set.PolygonID = sides[0].PolygonID
	}

	for _, side := range sides {
		stations, err := Stations(side.Points, sampleCount(samples))
		if err != nil {
			return nil, err
		}
		p, err := e.Extract(source, stations)
		if err != nil {
			return nil, err
		}
		set.Sides = append(set.Sides, models.SideProfile{
			Path:    side,
			Profile: p,
		})
	}

	return set, nil
}
