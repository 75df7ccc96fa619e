package models

import "github.com/paulmach/orb"

// PathKind 断面线类型标识
type PathKind string

const (
	PathStraight    PathKind = "straight"
	PathOffsetPair  PathKind = "offset_pair"
	PathPolygonSide PathKind = "polygon_side"
	PathFreehand    PathKind = "freehand"
	PathRectangle   PathKind = "rectangle"
)

// SectionPath 断面线：至少两个不重合顶点的折线
type SectionPath interface {
	Kind() PathKind
	// Centerline 返回用于高程采样的中心线
	Centerline() orb.LineString
}

// StraightPath 直线断面
type StraightPath struct {
	Points orb.LineString `json:"points"`
}

func (p StraightPath) Kind() PathKind             { return PathStraight }
func (p StraightPath) Centerline() orb.LineString { return p.Points }

// OffsetPairPath 平行偏移断面对：由中心线向两侧各偏移Offset得到的两条平行线
// Primary为正向偏移线（A-A'），Secondary为反向偏移线（B-B'）
type OffsetPairPath struct {
	Center    StraightPath `json:"center"`
	Primary   StraightPath `json:"primary"`
	Secondary StraightPath `json:"secondary"`
	Offset    float64      `json:"offset"`
}

func (p OffsetPairPath) Kind() PathKind             { return PathOffsetPair }
func (p OffsetPairPath) Centerline() orb.LineString { return p.Primary.Points }

// PolygonSidePath 多边形分解出的单条边断面，SideIndex保持多边形顶点顺序
type PolygonSidePath struct {
	SideIndex int            `json:"side_index"`
	Width     float64        `json:"width"`
	PolygonID string         `json:"polygon_id"`
	Points    orb.LineString `json:"points"`
}

func (p PolygonSidePath) Kind() PathKind             { return PathPolygonSide }
func (p PolygonSidePath) Centerline() orb.LineString { return p.Points }

// FreehandPath 手绘缓冲断面：采样只走中心线本身，
// Buffer多边形仅供上层显示与导出使用
type FreehandPath struct {
	Line   orb.LineString `json:"line"`
	Width  float64        `json:"width"`
	Buffer orb.Polygon    `json:"buffer,omitempty"`
}

func (p FreehandPath) Kind() PathKind             { return PathFreehand }
func (p FreehandPath) Centerline() orb.LineString { return p.Line }

// RectanglePath 矩形断面：两点中心线加宽度撑出的四角矩形
type RectanglePath struct {
	Line    StraightPath `json:"line"`
	Width   float64      `json:"width"`
	Corners orb.Ring     `json:"corners"`
}

func (p RectanglePath) Kind() PathKind             { return PathRectangle }
func (p RectanglePath) Centerline() orb.LineString { return p.Line.Points }
