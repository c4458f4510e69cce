package core

import "testing"

func TestFitGrid(t *testing.T) {
	tests := []struct {
		name       string
		cfg        RuntimeConfig
		cols, rows int
	}{
		{
			name: "fixed columns, derived rows",
			cfg:  RuntimeConfig{ScreenW: 100, ScreenH: 30, Columns: 40, CellWidth: 2},
			cols: 40, rows: 27,
		},
		{
			name: "columns capped by width",
			cfg:  RuntimeConfig{ScreenW: 60, ScreenH: 30, Columns: 40, CellWidth: 2},
			cols: 30, rows: 27,
		},
		{
			name: "explicit rows kept",
			cfg:  RuntimeConfig{ScreenW: 100, ScreenH: 30, Columns: 10, Rows: 8, CellWidth: 2},
			cols: 10, rows: 8,
		},
		{
			name: "tiny screen still yields one cell",
			cfg:  RuntimeConfig{ScreenW: 1, ScreenH: 2, Columns: 40, CellWidth: 2},
			cols: 1, rows: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.cfg.FitGrid()
			if got.Columns != tc.cols || got.Rows != tc.rows {
				t.Errorf("FitGrid() = %dx%d, expected %dx%d", got.Columns, got.Rows, tc.cols, tc.rows)
			}
		})
	}
}
