package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookmart/admin-service/admin/internal/model"
)

func TestPageParams_Normalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   model.PageParams
		want model.PageParams
	}{
		{name: "valid", in: model.PageParams{Page: 3, PerPage: 50}, want: model.PageParams{Page: 3, PerPage: 50}},
		{name: "zero page", in: model.PageParams{Page: 0, PerPage: 20}, want: model.PageParams{Page: 1, PerPage: 20}},
		{name: "negative page", in: model.PageParams{Page: -5, PerPage: 20}, want: model.PageParams{Page: 1, PerPage: 20}},
		{name: "negative per_page", in: model.PageParams{Page: 2, PerPage: -1}, want: model.PageParams{Page: 2, PerPage: model.DefaultPerPage}},
		{name: "all zero", in: model.PageParams{}, want: model.PageParams{Page: 1, PerPage: model.DefaultPerPage}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPageParams_Offset(t *testing.T) {
	t.Parallel()
	require.Equal(t, 0, model.PageParams{Page: 1, PerPage: 20}.Normalize().Offset())
	require.Equal(t, 40, model.PageParams{Page: 3, PerPage: 20}.Normalize().Offset())
	// pathological input degrades to the first page, not a negative offset
	require.Equal(t, 0, model.PageParams{Page: -2, PerPage: 20}.Normalize().Offset())
}

func TestNewPagination(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		p     model.PageParams
		total int
		want  model.Pagination
	}{
		{
			name:  "exact multiple",
			p:     model.PageParams{Page: 1, PerPage: 20},
			total: 40,
			want:  model.Pagination{Page: 1, PerPage: 20, Pages: 2, Total: 40},
		},
		{
			name:  "partial last page",
			p:     model.PageParams{Page: 2, PerPage: 20},
			total: 45,
			want:  model.Pagination{Page: 2, PerPage: 20, Pages: 3, Total: 45},
		},
		{
			name:  "empty result",
			p:     model.PageParams{Page: 1, PerPage: 20},
			total: 0,
			want:  model.Pagination{Page: 1, PerPage: 20, Pages: 0, Total: 0},
		},
		{
			name:  "clamped input",
			p:     model.PageParams{Page: 0, PerPage: 0},
			total: 5,
			want:  model.Pagination{Page: 1, PerPage: model.DefaultPerPage, Pages: 1, Total: 5},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, model.NewPagination(tt.p, tt.total))
		})
	}
}
