package study

import "strings"

// BlockKind classifies one line of sub-topic content.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBullet
	BlockCallout
	BlockTable
	BlockBlank
	BlockDiagram
)

// fence opens and closes a diagram. Text after the opening fence is the
// diagram caption.
const fence = "```"

// Block is one rendered unit of content. Table blocks carry every
// consecutive "|" row, the first of which is the header. Diagram blocks
// carry their lines untouched in Lines and the caption in Text.
type Block struct {
	Kind  BlockKind
	Text  string
	Rows  [][]string
	Lines []string
}

// ParseContent splits a sub-topic body into blocks using its line markers:
// "## " heading, "- " bullet, "> " callout, "|" table row and a ``` fenced
// diagram. Anything else is a paragraph line. An unclosed fence runs to the
// end of the content.
func ParseContent(content string) []Block {
	var blocks []Block
	var diagram *Block
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if diagram != nil {
			if trimmed == fence {
				blocks = append(blocks, *diagram)
				diagram = nil
				continue
			}
			diagram.Lines = append(diagram.Lines, strings.TrimRight(line, " \t\r"))
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, fence):
			diagram = &Block{Kind: BlockDiagram, Text: strings.TrimSpace(strings.TrimPrefix(trimmed, fence))}
		case trimmed == "":
			blocks = append(blocks, Block{Kind: BlockBlank})
		case strings.HasPrefix(trimmed, "## "):
			blocks = append(blocks, Block{Kind: BlockHeading, Text: strings.TrimPrefix(trimmed, "## ")})
		case strings.HasPrefix(trimmed, "- "):
			blocks = append(blocks, Block{Kind: BlockBullet, Text: strings.TrimPrefix(trimmed, "- ")})
		case strings.HasPrefix(trimmed, "> "):
			blocks = append(blocks, Block{Kind: BlockCallout, Text: strings.TrimPrefix(trimmed, "> ")})
		case strings.HasPrefix(trimmed, "|"):
			row := splitRow(trimmed)
			if n := len(blocks); n > 0 && blocks[n-1].Kind == BlockTable {
				blocks[n-1].Rows = append(blocks[n-1].Rows, row)
			} else {
				blocks = append(blocks, Block{Kind: BlockTable, Rows: [][]string{row}})
			}
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: trimmed})
		}
	}
	if diagram != nil {
		blocks = append(blocks, *diagram)
	}
	return blocks
}

func splitRow(line string) []string {
	parts := strings.Split(strings.Trim(line, "|"), "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}
