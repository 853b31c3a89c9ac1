package utils

import (
	"math"

	"github.com/zooyer/dxfcut/core"
	"github.com/zooyer/dxfcut/entities"
)

// DrawingBBox 计算整张图纸的范围（所有实体包围盒的并集）
func DrawingBBox(ents []entities.Entity) core.BBox {
	if len(ents) == 0 {
		return core.BBox{}
	}

	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64

	for _, entity := range ents {
		box := entity.BBox()
		minX = math.Min(minX, box.Min.X)
		minY = math.Min(minY, box.Min.Y)
		maxX = math.Max(maxX, box.Max.X)
		maxY = math.Max(maxY, box.Max.Y)
	}

	return core.BBox{
		Min: core.Point{X: minX, Y: minY},
		Max: core.Point{X: maxX, Y: maxY},
	}
}
