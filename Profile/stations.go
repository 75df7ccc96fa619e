package Profile

import (
	"fmt"
	"math"

	"github.com/GrainArc/TerraSection/models"
	"github.com/paulmach/orb"
)

// 断面桩号生成：沿折线按等弧长间隔布设采样点

// Stations 沿折线生成n个采样桩号，首尾必落在折线端点上。
// 多段折线按累计弧长定位，桩距等于相邻采样点的平面距离累加
func Stations(line orb.LineString, n int) ([]models.Station, error) {
	if len(line) < 2 {
		return nil, fmt.Errorf("%w: 折线至少需要2个顶点", models.ErrInvalidGeometry)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: 采样点数至少为2，实际%d", models.ErrInvalidGeometry, n)
	}

	// 各段长度与总长
	segLens := make([]float64, len(line)-1)
	total := 0.0
	for i := 0; i < len(line)-1; i++ {
		segLens[i] = math.Hypot(line[i+1][0]-line[i][0], line[i+1][1]-line[i][1])
		total += segLens[i]
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: 折线长度为零", models.ErrInvalidGeometry)
	}

	stations := make([]models.Station, n)
	step := total / float64(n-1)

	seg := 0
	segStart := 0.0
	cum := 0.0
	var prevX, prevY float64

	for i := 0; i < n; i++ {
		target := float64(i) * step
		if i == n-1 {
			target = total
		}

		// 推进到包含目标弧长的线段
		for seg < len(segLens)-1 && segStart+segLens[seg] < target {
			segStart += segLens[seg]
			seg++
		}

		var x, y float64
		if segLens[seg] == 0 {
			x, y = line[seg][0], line[seg][1]
		} else {
			t := (target - segStart) / segLens[seg]
			if t > 1 {
				t = 1
			}
			x = line[seg][0] + t*(line[seg+1][0]-line[seg][0])
			y = line[seg][1] + t*(line[seg+1][1]-line[seg][1])
		}

		if i > 0 {
			cum += math.Hypot(x-prevX, y-prevY)
		}
		stations[i] = models.Station{Index: i, Distance: cum, X: x, Y: y}
		prevX, prevY = x, y
	}

	return stations, nil
}
