package service

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ndewijer/fund-analytics/internal/model"
)

var holdingsHeader = []string{"股票代码", "股票名称", "占净值比例"}

// renderHoldingsTable lays out holdings as right-aligned columns separated by a single space.
// Column widths are measured in terminal cells, so CJK names count double.
func renderHoldingsTable(rows []model.Holding) string {
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, holdingsHeader)
	for _, row := range rows {
		cells = append(cells, []string{row.StockCode, row.StockName, row.PctOfNAV})
	}

	widths := make([]int, len(holdingsHeader))
	for _, line := range cells {
		for i, cell := range line {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(cells))
	for _, line := range cells {
		padded := make([]string, len(line))
		for i, cell := range line {
			padded[i] = runewidth.FillLeft(cell, widths[i])
		}
		lines = append(lines, strings.Join(padded, " "))
	}

	return strings.Join(lines, "\n")
}
