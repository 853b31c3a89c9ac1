package entities

import (
	"math"

	"github.com/zooyer/dxfcut/core"
)

type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64 // 组码 50，角度制
	EndAngle   float64 // 组码 51，角度制
}

func init() {
	Register("ARC", func() Entity { return &Arc{BaseEntity: BaseEntity{TypeName: "ARC"}} })
}

func (a *Arc) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 8:
			a.LayerName = t.AsString()
		case 10:
			a.Center.X = t.AsFloat()
		case 20:
			a.Center.Y = t.AsFloat()
		case 30:
			a.Center.Z = t.AsFloat()
		case 40:
			a.Radius = t.AsFloat()
		case 50:
			a.StartAngle = t.AsFloat()
		case 51:
			a.EndAngle = t.AsFloat()
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

// PointAt 计算圆弧上给定角度（角度制）对应的端点
func (a *Arc) PointAt(angle float64) core.Point {
	rad := angle * math.Pi / 180.0
	return core.Point{
		X: a.Center.X + a.Radius*math.Cos(rad),
		Y: a.Center.Y + a.Radius*math.Sin(rad),
	}
}

func (a *Arc) BBox() core.BBox {
	// 简化处理：取整圆范围，够粗略定位即可
	return core.BBox{
		Min: core.Point{X: a.Center.X - a.Radius, Y: a.Center.Y - a.Radius},
		Max: core.Point{X: a.Center.X + a.Radius, Y: a.Center.Y + a.Radius},
	}
}
