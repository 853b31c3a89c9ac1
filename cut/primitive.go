package cut

import (
	"github.com/zooyer/dxfcut/core"
	"github.com/zooyer/dxfcut/entities"
)

// Primitive 是归一化后的切割图元
type Primitive interface {
	primitive()
}

// Circle 整圆：一次落刀，面积按 π·r² 计
type Circle struct {
	Center core.Point
	Radius float64
}

// Ring 闭合多边形：一次落刀，面积按鞋带公式计
type Ring struct {
	Vertices []core.Point
}

// Segment 开放线段：进入端点图参与闭环识别
type Segment struct {
	Start, End core.Point
}

// Loose 未闭合的多段线散线：按两条独立切割计，不参与闭环识别
type Loose struct{}

func (Circle) primitive()  {}
func (Ring) primitive()    {}
func (Segment) primitive() {}
func (Loose) primitive()   {}

// Normalize 将一个图纸实体归一化为切割图元
// 只有 LINE 和 ARC 以端点线段参与闭环识别，其他实体要么直接贡献，要么忽略
func Normalize(entity entities.Entity) []Primitive {
	switch e := entity.(type) {
	case *entities.Circle:
		return []Primitive{Circle{Center: e.Center, Radius: e.Radius}}
	case *entities.Line:
		return []Primitive{Segment{Start: e.Start, End: e.End}}
	case *entities.Arc:
		// 圆弧只取两个端点投影，中间曲率不影响落刀和连通性
		return []Primitive{Segment{Start: e.PointAt(e.StartAngle), End: e.PointAt(e.EndAngle)}}
	case *entities.LWPolyline:
		return normalizePolyline(e.Vertices, e.Closed)
	case *entities.Polyline:
		return normalizePolyline(e.Vertices, e.Closed)
	}

	// 其他实体（文字、标注、块引用等）不参与切割计算
	return nil
}

func normalizePolyline(vertices []core.Point, closed bool) []Primitive {
	if closed {
		// 顶点不足 3 个时 Ring 面积为 0，但仍计一次落刀
		return []Primitive{Ring{Vertices: vertices}}
	}
	return []Primitive{Loose{}}
}
