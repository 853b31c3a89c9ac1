package dxfcut

import (
	"io"
	"os"
	"strings"

	"github.com/zooyer/dxfcut/core"
	"github.com/zooyer/dxfcut/entities"
)

type Block struct {
	Name     string
	Entities []entities.Entity
}

type Document struct {
	Blocks   map[string]*Block
	Entities []entities.Entity
}

func (d *Document) parseBlocks(scanner *core.Scanner) {
	var currentBlock *Block
	if !scanner.Next() {
		return
	}
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "BLOCK" {
			currentBlock = &Block{Entities: []entities.Entity{}}
			for scanner.Next() {
				if scanner.LastTag.Code == 2 {
					currentBlock.Name = strings.ToUpper(scanner.LastTag.Value)
					break
				}
				if scanner.LastTag.Code == 0 {
					break
				}
			}
			d.Blocks[currentBlock.Name] = currentBlock
		} else if currentBlock != nil && tag.Code == 0 &&
			strings.ToUpper(tag.Value) != "ENDBLK" {
			ent := entities.CreateEntity(tag.Value)
			if ent != nil {
				ent.Parse(scanner)
				currentBlock.Entities = append(currentBlock.Entities, ent)
				// Parse 停在下一个 0 组码上，直接进入下一次判断
				continue
			}
		}
		if !scanner.Next() {
			break
		}
	}
}

func (d *Document) parseEntities(scanner *core.Scanner) {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		if tag.Code == 0 {
			ent := entities.CreateEntity(tag.Value)
			if ent != nil {
				ent.Parse(scanner)
				d.Entities = append(d.Entities, ent)
				continue
			}
		}
		if !scanner.Next() {
			break
		}
	}
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

func Load(reader io.Reader) (doc *Document, err error) {
	var (
		scanner  = core.NewScanner(reader)
		document = &Document{
			Blocks:   make(map[string]*Block),
			Entities: make([]entities.Entity, 0, 1024),
		}
	)

	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "SECTION" {
			if !scanner.Next() {
				break
			}
			sectionName := strings.ToUpper(scanner.LastTag.Value)
			switch sectionName {
			case "BLOCKS":
				document.parseBlocks(scanner)
			case "ENTITIES":
				document.parseEntities(scanner)
			}
		}
	}

	return document, scanner.Err()
}
