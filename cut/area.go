package cut

import (
	"math"

	"github.com/zooyer/dxfcut/core"
)

// Shoelace 鞋带公式：按环序顶点计算简单多边形面积
// 末顶点回绕到首顶点闭合，结果取绝对值，与顶点方向无关
func Shoelace(points []core.Point) float64 {
	if len(points) < 3 {
		return 0
	}

	var sum float64
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}

	return math.Abs(sum) / 2
}
