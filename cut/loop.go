package cut

import (
	"math"
	"sort"

	"github.com/zooyer/dxfcut/core"
)

// isClosed 判定分量是否构成单一闭环：至少 3 个节点且每个节点恰好 2 个邻居
func (g *graph) isClosed(comp []string) bool {
	if len(comp) < 3 {
		return false
	}
	for _, key := range comp {
		if len(g.adjacent[key]) != 2 {
			return false
		}
	}
	return true
}

// ordered 将闭环节点按质心极角升序排列，作为鞋带公式的遍历顺序
// 对凸环和大多数星形环正确；深度凹环可能乱序导致面积偏差（已知局限，见测试）
func (g *graph) ordered(comp []string) []core.Point {
	points := make([]core.Point, 0, len(comp))

	var cx, cy float64
	for _, key := range comp {
		p := g.points[key]
		points = append(points, p)
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(points))
	cy /= float64(len(points))

	sort.Slice(points, func(i, j int) bool {
		return math.Atan2(points[i].Y-cy, points[i].X-cx) < math.Atan2(points[j].Y-cy, points[j].X-cx)
	})

	return points
}
