package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		count      int
		wantPages  int
		wantPage   int
		wantPerPag int
	}{
		{"exact fit", 40, 1, 20, 20, 2, 1, 20},
		{"partial last page", 41, 3, 20, 1, 3, 3, 20},
		{"empty result", 0, 1, 20, 0, 1, 1, 20},
		{"zero per page falls back", 10, 1, 0, 10, 1, 1, 20},
		{"zero page falls back", 10, 0, 10, 10, 1, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPagination(tt.total, tt.page, tt.perPage, tt.count)
			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", got.CurrentPage, tt.wantPage)
			}
			if got.PerPage != tt.wantPerPag {
				t.Errorf("PerPage = %d, want %d", got.PerPage, tt.wantPerPag)
			}
			if got.Total != tt.total || got.Count != tt.count {
				t.Errorf("Total/Count passthrough broken: %+v", got)
			}
		})
	}
}
