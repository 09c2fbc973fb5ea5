package forms

import (
	"testing"
)

func TestGetTotalPages(t *testing.T) {
	type args struct {
		totalCount int64
		limit      int64
	}
	tests := []struct {
		name string
		args args
		want int64
	}{
		{
			name: "exact fit",
			args: args{
				totalCount: 10,
				limit:      10,
			},
			want: 1,
		},
		{
			name: "two pages",
			args: args{
				totalCount: 10,
				limit:      5,
			},
			want: 2,
		},
		{
			name: "partial last page",
			args: args{
				totalCount: 10,
				limit:      3,
			},
			want: 4,
		},
		{
			name: "zero limit",
			args: args{
				totalCount: 10,
				limit:      0,
			},
			want: 0,
		},
		{
			name: "no items",
			args: args{
				totalCount: 0,
				limit:      10,
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getTotalPages(tt.args.totalCount, tt.args.limit); got != tt.want {
				t.Errorf("getTotalPages() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrepPaginationInfos(t *testing.T) {
	t.Run("page clamped to last page", func(t *testing.T) {
		infos := prepPaginationInfos(10, 5, 5)
		if infos.CurrentPage != 2 {
			t.Errorf("unexpected current page: %d", infos.CurrentPage)
		}
		if infos.TotalPages != 2 {
			t.Errorf("unexpected total pages: %d", infos.TotalPages)
		}
	})

	t.Run("defaults applied for invalid values", func(t *testing.T) {
		infos := prepPaginationInfos(25, 0, 0)
		if infos.PageSize != 10 {
			t.Errorf("unexpected page size: %d", infos.PageSize)
		}
		if infos.CurrentPage != 1 {
			t.Errorf("unexpected current page: %d", infos.CurrentPage)
		}
		if infos.TotalPages != 3 {
			t.Errorf("unexpected total pages: %d", infos.TotalPages)
		}
	})
}
