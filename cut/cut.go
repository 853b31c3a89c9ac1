// Package cut 从图纸实体序列估算切割机的落刀次数与切割总面积
//
// 整圆和闭合多段线直接贡献落刀与面积；LINE/ARC 以端点线段进入无向图，
// 端点在容差内吸附合并，闭环按一个封闭切割计，开链按两条独立切割计。
package cut

import (
	"math"

	"github.com/zooyer/dxfcut/entities"
)

// DefaultPrecision 端点吸附精度默认值（小数位数）
const DefaultPrecision = 6

// Options 切割估算配置
type Options struct {
	Precision int // 端点吸附小数位数，0 表示使用 DefaultPrecision
}

func (o Options) precision() int {
	if o.Precision <= 0 {
		return DefaultPrecision
	}
	return o.Precision
}

// Result 切割估算结果
type Result struct {
	Pierces int     // 落刀次数
	Area    float64 // 切割总面积（坐标单位的平方）
}

// Compute 对整张图纸估算落刀次数与切割面积
// 纯函数：每次调用持有独立的端点图，相同输入两次计算结果完全一致
func Compute(ents []entities.Entity, opt Options) Result {
	var (
		result Result
		g      = newGraph(opt.precision())
	)

	// 1. 归一化：直接贡献立即累加，开放线段进入端点图
	for _, entity := range ents {
		for _, prim := range Normalize(entity) {
			switch p := prim.(type) {
			case Circle:
				result.Pierces++
				result.Area += math.Pi * p.Radius * p.Radius
			case Ring:
				result.Pierces++
				result.Area += Shoelace(p.Vertices)
			case Loose:
				result.Pierces += 2
			case Segment:
				g.add(p)
			}
		}
	}

	// 2. 闭环识别：闭环计一次落刀加面积，开链/分叉计两次落刀零面积
	for _, comp := range g.components() {
		if g.isClosed(comp) {
			result.Pierces++
			result.Area += Shoelace(g.ordered(comp))
		} else {
			result.Pierces += 2
		}
	}

	return result
}
