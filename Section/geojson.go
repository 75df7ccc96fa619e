package Section

import (
	"fmt"

	"github.com/GrainArc/TerraSection/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON输入辅助：前端传来的要素转为断面路径

// LineFromGeoJSON 解析GeoJSON要素中的LineString几何
func LineFromGeoJSON(data []byte) (orb.LineString, error) {
	feat, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return nil, fmt.Errorf("%w: GeoJSON解析失败: %v", models.ErrInvalidGeometry, err)
	}
	line, ok := feat.Geometry.(orb.LineString)
	if !ok {
		return nil, fmt.Errorf("%w: 几何类型%s不是LineString", models.ErrInvalidGeometry, feat.Geometry.GeoJSONType())
	}
	return line, nil
}

// RingFromGeoJSON 解析GeoJSON要素中多边形的外环
func RingFromGeoJSON(data []byte) ([]orb.Point, error) {
	feat, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return nil, fmt.Errorf("%w: GeoJSON解析失败: %v", models.ErrInvalidGeometry, err)
	}
	poly, ok := feat.Geometry.(orb.Polygon)
	if !ok {
		return nil, fmt.Errorf("%w: 几何类型%s不是Polygon", models.ErrInvalidGeometry, feat.Geometry.GeoJSONType())
	}
	if len(poly) == 0 {
		return nil, fmt.Errorf("%w: 多边形没有外环", models.ErrInvalidGeometry)
	}
	return []orb.Point(poly[0]), nil
}

// OffsetPairFromGeoJSON 两点线要素加偏移距离生成平行断面对
func OffsetPairFromGeoJSON(data []byte, d float64) (models.OffsetPairPath, error) {
	line, err := LineFromGeoJSON(data)
	if err != nil {
		return models.OffsetPairPath{}, err
	}
	if len(line) < 2 {
		return models.OffsetPairPath{}, fmt.Errorf("%w: 中心线至少需要2个顶点", models.ErrInvalidGeometry)
	}
	return OffsetPair(line[0], line[len(line)-1], d)
}
