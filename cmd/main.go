package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ncruces/zenity"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/dxfcut"
	"github.com/zooyer/dxfcut/cut"
	"github.com/zooyer/dxfcut/utils"
)

var precision = flag.Int("precision", cut.DefaultPrecision, "端点吸附精度(小数位数)")

// selectFile 优先取拖入的文件参数，没有时弹出文件选择对话框
func selectFile() string {
	if args := flag.Args(); len(args) > 0 {
		return args[0]
	}

	filename, err := zenity.SelectFile(
		zenity.Title("请选择DXF图纸"),
		zenity.FileFilters{
			{Name: "DXF图纸", Patterns: []string{"*.dxf"}, CaseFold: true},
		},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			fmt.Println("文件选择失败:", err)
		}
		return ""
	}

	return filename
}

func main() {
	defer xos.PauseExit()

	flag.Parse()

	filename := selectFile()
	if filename == "" {
		fmt.Println("请把DXF文件拖入该程序上执行！")
		return
	}

	doc, err := dxfcut.Open(filename)
	if err != nil {
		panic(err)
	}

	// 1. 展开块引用，让块内几何进入世界坐标参与计算
	ents := utils.Flatten(doc)

	// 2. 估算落刀次数与切割面积
	result := cut.Compute(ents, cut.Options{Precision: *precision})

	// 3. 打印信息
	box := utils.DrawingBBox(ents)
	fmt.Printf("开始处理: %s (%d 个实体)...\n", filepath.Base(filename), len(ents))
	fmt.Printf("图纸范围: RECTANG %.2f,%.2f %.2f,%.2f\n", box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
	fmt.Println("落刀次数:", result.Pierces)
	fmt.Printf("切割面积: %.6f\n", result.Area)

	// 4. 追加写入CSV汇总，支持多张图纸依次拖入统计
	const header = "文件,实体数,落刀次数,切割面积\n"
	summary := filepath.Join(filepath.Dir(filename), "切割估算.csv")
	if _, err = os.Stat(summary); os.IsNotExist(err) {
		if err = os.WriteFile(summary, []byte(header), 0644); err != nil {
			panic(err)
		}
	}

	line := fmt.Sprintf("%s,%d,%d,%.6f\n", filepath.Base(filename), len(ents), result.Pierces, result.Area)
	if err = xos.AppendFile(summary, []byte(line), 0644); err != nil {
		panic(err)
	}

	fmt.Println()
	fmt.Println("写入文件:", summary)
}
