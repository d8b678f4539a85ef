package study

import "testing"

func TestParseContent(t *testing.T) {
	content := `Intro line.

## Heading
- first
- second
> remember this
| A | B
| 1 | 2
after`

	blocks := ParseContent(content)
	kinds := []BlockKind{
		BlockParagraph, BlockBlank, BlockHeading, BlockBullet, BlockBullet,
		BlockCallout, BlockTable, BlockParagraph,
	}
	if len(blocks) != len(kinds) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(kinds))
	}
	for i, k := range kinds {
		if blocks[i].Kind != k {
			t.Errorf("block %d: kind %d, want %d", i, blocks[i].Kind, k)
		}
	}

	if blocks[2].Text != "Heading" {
		t.Errorf("heading text = %q", blocks[2].Text)
	}
	table := blocks[6]
	if len(table.Rows) != 2 {
		t.Fatalf("table rows = %d, want 2", len(table.Rows))
	}
	if table.Rows[0][0] != "A" || table.Rows[1][1] != "2" {
		t.Errorf("table cells = %v", table.Rows)
	}
}

func TestParseContent_TrailingNewline(t *testing.T) {
	blocks := ParseContent("only\n")
	if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
		t.Errorf("got %+v, want a single paragraph", blocks)
	}
}

func TestParseContent_DiagramKeptVerbatim(t *testing.T) {
	content := "Intro\n```Star Topology\n      [A]\n       |\n[B]--[Hub]--[C]\n- not a bullet\n```\n- after"

	blocks := ParseContent(content)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3: %+v", len(blocks), blocks)
	}
	d := blocks[1]
	if d.Kind != BlockDiagram || d.Text != "Star Topology" {
		t.Fatalf("block 1 = %+v, want a captioned diagram", d)
	}
	want := []string{"      [A]", "       |", "[B]--[Hub]--[C]", "- not a bullet"}
	if len(d.Lines) != len(want) {
		t.Fatalf("diagram lines = %q, want %q", d.Lines, want)
	}
	for i := range want {
		if d.Lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, d.Lines[i], want[i])
		}
	}
	if blocks[2].Kind != BlockBullet {
		t.Errorf("content after the fence should parse normally, got %+v", blocks[2])
	}
}

func TestParseContent_UnclosedDiagram(t *testing.T) {
	blocks := ParseContent("```\n  x--y")
	if len(blocks) != 1 || blocks[0].Kind != BlockDiagram || blocks[0].Text != "" {
		t.Fatalf("got %+v, want one uncaptioned diagram", blocks)
	}
	if len(blocks[0].Lines) != 1 || blocks[0].Lines[0] != "  x--y" {
		t.Errorf("lines = %q", blocks[0].Lines)
	}
}
