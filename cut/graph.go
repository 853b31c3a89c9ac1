package cut

import (
	"fmt"
	"math"
	"sort"

	"github.com/zooyer/dxfcut/core"
)

// graph 端点无向图：节点是吸附后的端点坐标，边是开放线段
// 邻接表是去重集合，同一对节点间的多条线段折叠为一条边
type graph struct {
	precision int
	adjacent  map[string]map[string]bool
	points    map[string]core.Point
}

func newGraph(precision int) *graph {
	return &graph{
		precision: precision,
		adjacent:  make(map[string]map[string]bool),
		points:    make(map[string]core.Point),
	}
}

// snap 将坐标四舍五入到固定小数位并生成节点键
// 两个端点键相同当且仅当吸附后坐标一致，这是全系统唯一的"同一点"判定
func (g *graph) snap(p core.Point) (key string, node core.Point) {
	pow := math.Pow(10, float64(g.precision))
	x := math.Round(p.X*pow) / pow
	y := math.Round(p.Y*pow) / pow

	// 归一化 -0，避免原点附近的端点分裂成两个节点
	if x == 0 {
		x = 0
	}
	if y == 0 {
		y = 0
	}

	return fmt.Sprintf("%.*f,%.*f", g.precision, x, g.precision, y), core.Point{X: x, Y: y}
}

func (g *graph) register(p core.Point) string {
	key, node := g.snap(p)
	if _, ok := g.points[key]; !ok {
		g.points[key] = node
		g.adjacent[key] = make(map[string]bool)
	}
	return key
}

func (g *graph) add(seg Segment) {
	ka := g.register(seg.Start)
	kb := g.register(seg.End)

	// 零长线段只登记节点，不产生自环
	if ka == kb {
		return
	}

	g.adjacent[ka][kb] = true
	g.adjacent[kb][ka] = true
}

// components 枚举连通分量，节点按键序遍历，保证同一输入两次计算结果完全一致
func (g *graph) components() (comps [][]string) {
	keys := make([]string, 0, len(g.points))
	for key := range g.points {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	visited := make(map[string]bool, len(keys))
	for _, key := range keys {
		if visited[key] {
			continue
		}

		var comp []string
		stack := []string{key}
		visited[key] = true

		for len(stack) > 0 {
			curr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, curr)

			next := make([]string, 0, len(g.adjacent[curr]))
			for n := range g.adjacent[curr] {
				next = append(next, n)
			}
			sort.Strings(next)

			for _, n := range next {
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}

		comps = append(comps, comp)
	}

	return
}
