package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// BuildBlocks lays out the block grid in row-major order.
// Columns split the full width, rows split the upper half of the height, and
// every cell shrinks by one pixel per side to leave gutters.
func BuildBlocks(bounds Bounds, cfg config.ArkanoidBlocks) []Block {
	cellW := bounds.Width() / cfg.Cols
	cellH := (bounds.Height() / cfg.Rows) / 2

	blocks := make([]Block, 0, cfg.Rows*cfg.Cols)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			x := bounds.MinX + col*cellW
			y := bounds.MinY + cfg.TopOffset + row*cellH

			rect := core.NewRect(x+1, y+1, cellW-2, cellH-2)
			blocks = append(blocks, NewBlock(rect, healthForRow(row, cfg.Rows)))
		}
	}
	return blocks
}

// healthForRow gives the lower quarter of the grid two hit points.
func healthForRow(row, rows int) int {
	if row >= rows-rows/4 {
		return 2
	}
	return 1
}
