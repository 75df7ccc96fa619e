package Wall

import (
	"fmt"
	"math"

	"github.com/GrainArc/TerraSection/config"
	"github.com/GrainArc/TerraSection/models"
	"github.com/golang/geo/r3"
	"github.com/google/uuid"
)

// 剖面墙网格：剖面折线沿垂向拉成直纹曲面。
// 顶点先排上边缘一行再排下边缘一行，面片为四边形索引

// Mesh 剖面墙网格。VertexBands/FaceBands按高程分带记带号，
// NaN顶点带号为-1。分带只是元数据，不改变几何
type Mesh struct {
	ID          string      `json:"id"`
	Vertices    []r3.Vector `json:"vertices"`
	Faces       [][4]int    `json:"faces"`
	VertexBands []int       `json:"vertex_bands"`
	FaceBands   []int       `json:"face_bands"`
	Bands       int         `json:"bands"`
	VExag       float64     `json:"vertical_exaggeration"`
}

// TopCount 上边缘顶点数，下边缘顶点与其一一对应
func (m *Mesh) TopCount() int {
	return len(m.Vertices) / 2
}

// Build 由单条剖面构造墙网格，墙底为合成平底：
// 底面高程取有效高程最小值减厚度，再乘垂向夸张系数
func Build(p models.Profile, thickness, vexag float64, bands int) (*Mesh, error) {
	n := len(p.Stations)
	if n < 2 || len(p.Elevations) != n {
		return nil, fmt.Errorf("%w: 剖面桩号与高程数不匹配或不足2个", models.ErrInvalidGeometry)
	}

	minValid := math.Inf(1)
	for _, z := range p.Elevations {
		if !math.IsNaN(z) && z < minValid {
			minValid = z
		}
	}
	if math.IsInf(minValid, 1) {
		return nil, fmt.Errorf("%w: 剖面没有有效高程，无法确定墙底", models.ErrInvalidGeometry)
	}
	bottomZ := (minValid - thickness) * vexag

	top := make([]float64, n)
	bottom := make([]float64, n)
	for i, z := range p.Elevations {
		top[i] = z * vexag
		bottom[i] = bottomZ
	}

	return assemble(p.Stations, top, bottom, vexag, bands), nil
}

// BuildDefault 按配置默认的厚度、夸张系数与分带数建墙
func BuildDefault(p models.Profile) (*Mesh, error) {
	return Build(p, config.Thickness, config.VExag, config.Bands)
}

// BuildRuled 由同一桩号序列上的两条剖面构造直纹墙，
// 上下边缘各取一条剖面的高程
func BuildRuled(top, bottom models.Profile, vexag float64, bands int) (*Mesh, error) {
	n := len(top.Stations)
	if n < 2 || len(top.Elevations) != n {
		return nil, fmt.Errorf("%w: 上边缘剖面桩号与高程数不匹配或不足2个", models.ErrInvalidGeometry)
	}
	if len(bottom.Stations) != n || len(bottom.Elevations) != n {
		return nil, fmt.Errorf("%w: 上下剖面桩号数不一致", models.ErrInvalidGeometry)
	}
	if top.ValidCount() == 0 || bottom.ValidCount() == 0 {
		return nil, fmt.Errorf("%w: 剖面没有有效高程，无法成墙", models.ErrInvalidGeometry)
	}

	topZ := make([]float64, n)
	bottomZ := make([]float64, n)
	for i := 0; i < n; i++ {
		topZ[i] = top.Elevations[i] * vexag
		bottomZ[i] = bottom.Elevations[i] * vexag
	}

	return assemble(top.Stations, topZ, bottomZ, vexag, bands), nil
}

// assemble 顶点、面片与高程分带
func assemble(stations []models.Station, topZ, bottomZ []float64, vexag float64, bands int) *Mesh {
	n := len(stations)
	vertices := make([]r3.Vector, 0, 2*n)
	for i, s := range stations {
		vertices = append(vertices, r3.Vector{X: s.X, Y: s.Y, Z: topZ[i]})
	}
	for i, s := range stations {
		vertices = append(vertices, r3.Vector{X: s.X, Y: s.Y, Z: bottomZ[i]})
	}

	// 四边形面片(i, i+1, i+1+n, i+n)，触及NaN顶点的跳过
	var faces [][4]int
	for i := 0; i < n-1; i++ {
		if math.IsNaN(topZ[i]) || math.IsNaN(topZ[i+1]) ||
			math.IsNaN(bottomZ[i]) || math.IsNaN(bottomZ[i+1]) {
			continue
		}
		faces = append(faces, [4]int{i, i + 1, i + 1 + n, i + n})
	}

	vertexBands := assignBands(vertices, bands)

	// 面片带号取四个角带号的最小值
	faceBands := make([]int, len(faces))
	for fi, f := range faces {
		fb := vertexBands[f[0]]
		for _, vi := range f[1:] {
			if vertexBands[vi] < fb {
				fb = vertexBands[vi]
			}
		}
		faceBands[fi] = fb
	}

	return &Mesh{
		ID:          uuid.New().String(),
		Vertices:    vertices,
		Faces:       faces,
		VertexBands: vertexBands,
		FaceBands:   faceBands,
		Bands:       bands,
		VExag:       vexag,
	}
}

// assignBands 把高程范围等分为bands个区间，逐顶点记带号
func assignBands(vertices []r3.Vector, bands int) []int {
	out := make([]int, len(vertices))
	if bands <= 0 {
		return out
	}

	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, v := range vertices {
		if math.IsNaN(v.Z) {
			continue
		}
		if v.Z < minZ {
			minZ = v.Z
		}
		if v.Z > maxZ {
			maxZ = v.Z
		}
	}

	span := maxZ - minZ
	for i, v := range vertices {
		if math.IsNaN(v.Z) {
			out[i] = -1
			continue
		}
		if span == 0 {
			out[i] = 0
			continue
		}
		b := int(float64(bands) * (v.Z - minZ) / span)
		if b >= bands {
			b = bands - 1
		}
		out[i] = b
	}
	return out
}

// BandInterval 第band个分带的高程区间
func (m *Mesh) BandInterval(band int) (low, high float64) {
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, v := range m.Vertices {
		if math.IsNaN(v.Z) {
			continue
		}
		if v.Z < minZ {
			minZ = v.Z
		}
		if v.Z > maxZ {
			maxZ = v.Z
		}
	}
	if m.Bands <= 0 {
		return minZ, maxZ
	}
	step := (maxZ - minZ) / float64(m.Bands)
	return minZ + float64(band)*step, minZ + float64(band+1)*step
}
