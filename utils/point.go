package utils

import (
	"math"
	"strings"

	"github.com/zooyer/dxfcut"
	"github.com/zooyer/dxfcut/core"
	"github.com/zooyer/dxfcut/entities"
)

// TransformPoint 将局部坐标点经过 Insert 变换转换到父级/世界坐标
func TransformPoint(p core.Point, ins *entities.Insert) core.Point {
	rad := ins.Rotation * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)

	// 1. 缩放
	tx := p.X * ins.Scale.X
	ty := p.Y * ins.Scale.Y
	tz := p.Z * ins.Scale.Z

	// 2. 旋转
	rx := tx*cos - ty*sin
	ry := tx*sin + ty*cos

	// 3. 平移
	return core.Point{
		X: rx + ins.InsertionPoint.X,
		Y: ry + ins.InsertionPoint.Y,
		Z: tz + ins.InsertionPoint.Z,
	}
}

// CombineInserts 合并嵌套块的变换矩阵逻辑
func CombineInserts(parent, child *entities.Insert) *entities.Insert {
	// 1. 旋转叠加
	combinedRotation := parent.Rotation + child.Rotation

	// 2. 缩放叠加
	combinedScale := core.Point{
		X: parent.Scale.X * child.Scale.X,
		Y: parent.Scale.Y * child.Scale.Y,
		Z: parent.Scale.Z * child.Scale.Z,
	}

	// 3. 插入点叠加：子块的插入点需要经过父块的 缩放 -> 旋转 -> 平移 变换
	combinedInsertionPoint := TransformPoint(child.InsertionPoint, parent)

	return &entities.Insert{
		BlockName:      child.BlockName,
		Rotation:       combinedRotation,
		Scale:          combinedScale,
		InsertionPoint: combinedInsertionPoint,
	}
}

// Flatten 展开文档：顶层实体原样保留，块引用递归展开成世界坐标下的几何实体
func Flatten(doc *dxfcut.Document) (out []entities.Entity) {
	for _, entity := range doc.Entities {
		out = append(out, flattenEntity(doc, entity, nil)...)
	}
	return
}

func flattenEntity(doc *dxfcut.Document, entity entities.Entity, parent *entities.Insert) (out []entities.Entity) {
	insert, ok := entity.(*entities.Insert)
	if !ok {
		if parent == nil {
			return []entities.Entity{entity}
		}
		return []entities.Entity{transformEntity(entity, parent)}
	}

	block, exists := doc.Blocks[strings.ToUpper(insert.BlockName)]
	if !exists {
		return
	}

	if parent != nil {
		insert = CombineInserts(parent, insert)
	}

	for _, sub := range block.Entities {
		out = append(out, flattenEntity(doc, sub, insert)...)
	}

	return
}

// transformEntity 将单个几何实体从块局部坐标变换到世界坐标
// 注意：圆/圆弧按 X 缩放取绝对值处理半径，非等比缩放的块不在支持范围内
func transformEntity(entity entities.Entity, ins *entities.Insert) entities.Entity {
	switch e := entity.(type) {
	case *entities.Line:
		return &entities.Line{
			BaseEntity: e.BaseEntity,
			Start:      TransformPoint(e.Start, ins),
			End:        TransformPoint(e.End, ins),
		}
	case *entities.Circle:
		return &entities.Circle{
			BaseEntity: e.BaseEntity,
			Center:     TransformPoint(e.Center, ins),
			Radius:     e.Radius * math.Abs(ins.Scale.X),
		}
	case *entities.Arc:
		return &entities.Arc{
			BaseEntity: e.BaseEntity,
			Center:     TransformPoint(e.Center, ins),
			Radius:     e.Radius * math.Abs(ins.Scale.X),
			StartAngle: e.StartAngle + ins.Rotation,
			EndAngle:   e.EndAngle + ins.Rotation,
		}
	case *entities.LWPolyline:
		return &entities.LWPolyline{
			BaseEntity: e.BaseEntity,
			Vertices:   transformPoints(e.Vertices, ins),
			Closed:     e.Closed,
		}
	case *entities.Polyline:
		return &entities.Polyline{
			BaseEntity: e.BaseEntity,
			Vertices:   transformPoints(e.Vertices, ins),
			Closed:     e.Closed,
		}
	}

	// 其他实体不参与切割计算，原样返回
	return entity
}

func transformPoints(points []core.Point, ins *entities.Insert) []core.Point {
	out := make([]core.Point, len(points))
	for i, p := range points {
		out[i] = TransformPoint(p, ins)
	}
	return out
}
