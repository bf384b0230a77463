package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"  Product Name  ", "product_name"},
		{"T1 QTY", "t1_qty"},
		{"T1   Price", "t1_price"},
		{"Unit Price ($)", "unit_price_"},
		{"Image-URL", "imageurl"},
		{"New Price 2022", "new_price_2022"},
		{"$$$", ""},
		{"", ""},
		{"가격", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHeader(tt.in), "input=%q", tt.in)
	}
}

// =============================================================================
// Cell Picker
// =============================================================================

func TestPickCell(t *testing.T) {
	t.Parallel()

	syn := DefaultSynonyms()

	tests := []struct {
		name   string
		row    Row
		keys   []string
		want   string
		wantOK bool
	}{
		{
			name:   "성공: 정규화된 열 이름으로 찾는다",
			row:    RowOf("Product Name", "  Ceramic Mug  "),
			keys:   syn.Name,
			want:   "Ceramic Mug",
			wantOK: true,
		},
		{
			name:   "성공: 동의어 순서가 우선순위다",
			row:    RowOf("Title", "Later", "Name", "First"),
			keys:   syn.Name,
			want:   "First",
			wantOK: true,
		},
		{
			name:   "성공: 공백뿐인 값은 건너뛰고 다음 동의어를 사용한다",
			row:    RowOf("Price", "   ", "MSRP", "$12"),
			keys:   syn.Price,
			want:   "$12",
			wantOK: true,
		},
		{
			name:   "성공: 숫자 값은 문자열로 변환된다",
			row:    RowOf("Price", 19.5),
			keys:   syn.Price,
			want:   "19.5",
			wantOK: true,
		},
		{
			name:   "실패: nil 과 빈 문자열은 없는 값이다",
			row:    RowOf("Name", nil, "Title", ""),
			keys:   syn.Name,
			wantOK: false,
		},
		{
			name:   "실패: 일치하는 열이 없다",
			row:    RowOf("Color", "red"),
			keys:   syn.SKU,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := PickCell(tt.row, tt.keys)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRow(t *testing.T) {
	t.Parallel()

	row := Row{{Header: "Name", Value: "a"}, {Header: "SKU", Value: "1"}, {Header: "Name", Value: "b"}}

	v, ok := row.Lookup("Name")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.False(t, row.Has("name"))
	assert.Equal(t, map[string]any{"Name": "b", "SKU": "1"}, row.Map())

	assert.Panics(t, func() { RowOf("Name") })
}
