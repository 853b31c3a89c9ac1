package entities

import (
	"math"

	"github.com/zooyer/dxfcut/core"
)

// Polyline 是旧式重量级多段线，顶点以 VERTEX 子实体给出，直到 SEQEND 结束
type Polyline struct {
	BaseEntity
	Vertices []core.Point
	Closed   bool // 组码 70 的 bit 1
}

func init() {
	Register("POLYLINE", func() Entity {
		return &Polyline{BaseEntity: BaseEntity{TypeName: "POLYLINE"}}
	})
}

func (p *Polyline) Parse(scanner *core.Scanner) error {
	// 1. 先读 POLYLINE 自身的头部标签
	for {
		tag := scanner.LastTag
		switch tag.Code {
		case 8:
			p.LayerName = tag.AsString()
		case 70:
			p.Closed = tag.AsInt()&0x01 != 0
		}

		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}

	// 2. 核心逻辑：继续在当前流中抓取 VERTEX 直到 SEQEND
	for {
		tag := scanner.LastTag
		if tag.Code == 0 {
			if tag.Value == "SEQEND" {
				scanner.Next() // 消耗掉 SEQEND
				break
			}
			if tag.Value == "VERTEX" {
				p.parseVertex(scanner)
				continue // parseVertex 内部已经 Next 了，直接进入下一次判断
			}
			// 遇到其他实体说明序列不完整，停止，把标签留给上层
			break
		}
		if !scanner.Next() {
			break
		}
	}
	return nil
}

func (p *Polyline) parseVertex(scanner *core.Scanner) {
	var point core.Point
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 {
			break
		}
		switch tag.Code {
		case 10:
			point.X = tag.AsFloat()
		case 20:
			point.Y = tag.AsFloat()
		case 30:
			point.Z = tag.AsFloat()
		}
	}
	p.Vertices = append(p.Vertices, point)
}

func (p *Polyline) BBox() core.BBox {
	if len(p.Vertices) == 0 {
		return core.BBox{}
	}
	miX, miY, maX, maY := p.Vertices[0].X, p.Vertices[0].Y, p.Vertices[0].X, p.Vertices[0].Y
	for _, v := range p.Vertices {
		miX = math.Min(miX, v.X)
		miY = math.Min(miY, v.Y)
		maX = math.Max(maX, v.X)
		maY = math.Max(maY, v.Y)
	}
	return core.BBox{Min: core.Point{X: miX, Y: miY}, Max: core.Point{X: maX, Y: maY}}
}
