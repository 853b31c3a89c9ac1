package entities

import "github.com/zooyer/dxfcut/core"

type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64
}

func init() {
	Register("INSERT", func() Entity {
		return &Insert{
			BaseEntity: BaseEntity{TypeName: "INSERT"},
			Scale:      core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
		}
	})
}

func (i *Insert) Parse(scanner *core.Scanner) error {
	for {
		tag := scanner.LastTag
		switch tag.Code {
		case 2:
			i.BlockName = tag.AsString()
		case 8:
			i.LayerName = tag.AsString()
		case 10:
			i.InsertionPoint.X = tag.AsFloat()
		case 20:
			i.InsertionPoint.Y = tag.AsFloat()
		case 30:
			i.InsertionPoint.Z = tag.AsFloat()
		case 41:
			i.Scale.X = tag.AsFloat()
		case 42:
			i.Scale.Y = tag.AsFloat()
		case 43:
			i.Scale.Z = tag.AsFloat()
		case 50:
			i.Rotation = tag.AsFloat()
		}

		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (i *Insert) BBox() core.BBox {
	// Insert 的包围盒比较特殊，通常需要结合 Block 定义计算
	// 这里先返回插入点
	return core.BBox{Min: i.InsertionPoint, Max: i.InsertionPoint}
}
