package models

// SetKind 剖面结果集类型
type SetKind string

const (
	SetSingle SetKind = "single"
	SetDual   SetKind = "dual"
	SetMulti  SetKind = "multi"
)

// ProfileSet 按采样模式区分的剖面结果集，
// 各模式必需字段由具体类型约束，不依赖运行期键检查
type ProfileSet interface {
	SetKind() SetKind
}

// SingleSet 单线模式：一条断面线在各数据源上的剖面，按数据源顺序排列
type SingleSet struct {
	Profiles []Profile `json:"profiles"`
}

func (SingleSet) SetKind() SetKind { return SetSingle }

// DualSet 偏移对模式：主副两线各自在全部数据源上的剖面。
// 单剖面模式下Secondary为nil，而不是补零占位
type DualSet struct {
	Path      OffsetPairPath `json:"path"`
	Primary   []Profile      `json:"primary"`
	Secondary []Profile      `json:"secondary,omitempty"`
}

func (DualSet) SetKind() SetKind { return SetDual }

// SideProfile 多边形一条边的断面线与其剖面
type SideProfile struct {
	Path    PolygonSidePath `json:"path"`
	Profile Profile         `json:"profile"`
}

// MultiSectionSet 多边形分解产生的成组断面，整组创建、整组销毁，
// 边的顺序与源多边形顶点顺序一致
type MultiSectionSet struct {
	ID        string        `json:"id"`
	PolygonID string        `json:"polygon_id"`
	Sides     []SideProfile `json:"sides"`
}

func (MultiSectionSet) SetKind() SetKind { return SetMulti }
