package dxfcut_test

import (
	"math"
	"strings"
	"testing"

	"github.com/zooyer/golib/xmath"

	"github.com/zooyer/dxfcut"
	"github.com/zooyer/dxfcut/cut"
	"github.com/zooyer/dxfcut/utils"
)

// 一张混合图纸：一个半径 2 的圆、一个闭合三角形多段线、四条线段围成的单位正方形
const mixedDrawing = "0\nSECTION\n2\nENTITIES\n" +
	"0\nCIRCLE\n10\n20.0\n20\n20.0\n40\n2.0\n" +
	"0\nLWPOLYLINE\n70\n1\n10\n0.0\n20\n0.0\n10\n4.0\n20\n0.0\n10\n0.0\n20\n3.0\n" +
	"0\nLINE\n10\n10.0\n20\n10.0\n11\n11.0\n21\n10.0\n" +
	"0\nLINE\n10\n11.0\n20\n10.0\n11\n11.0\n21\n11.0\n" +
	"0\nLINE\n10\n11.0\n20\n11.0\n11\n10.0\n21\n11.0\n" +
	"0\nLINE\n10\n10.0\n20\n11.0\n11\n10.0\n21\n10.0\n" +
	"0\nENDSEC\n"

func TestLoad_MixedDrawing(t *testing.T) {
	doc, err := dxfcut.Load(strings.NewReader(mixedDrawing))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(doc.Entities) != 6 {
		t.Fatalf("实体数不符: %d", len(doc.Entities))
	}

	result := cut.Compute(utils.Flatten(doc), cut.Options{})
	if result.Pierces != 3 {
		t.Errorf("落刀次数不符: %d", result.Pierces)
	}
	if want := 4*math.Pi + 6 + 1; !xmath.Equal(result.Area, want, 1e-9) {
		t.Errorf("总面积不符: 期望 %v, 得到 %v", want, result.Area)
	}
}

func TestLoad_BlockReference(t *testing.T) {
	// 块内一个单位正方形多段线，被平移引用两次
	data := "0\nSECTION\n2\nBLOCKS\n" +
		"0\nBLOCK\n2\nHOLE\n" +
		"0\nLWPOLYLINE\n70\n1\n10\n0.0\n20\n0.0\n10\n1.0\n20\n0.0\n10\n1.0\n20\n1.0\n10\n0.0\n20\n1.0\n" +
		"0\nENDBLK\n0\nENDSEC\n" +
		"0\nSECTION\n2\nENTITIES\n" +
		"0\nINSERT\n2\nHOLE\n10\n0.0\n20\n0.0\n" +
		"0\nINSERT\n2\nHOLE\n10\n10.0\n20\n0.0\n" +
		"0\nENDSEC\n"

	doc, err := dxfcut.Load(strings.NewReader(data))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("块数不符: %d", len(doc.Blocks))
	}

	result := cut.Compute(utils.Flatten(doc), cut.Options{})
	if result.Pierces != 2 {
		t.Errorf("落刀次数不符: %d", result.Pierces)
	}
	if !xmath.Equal(result.Area, 2, 1e-9) {
		t.Errorf("总面积不符: %v", result.Area)
	}
}
