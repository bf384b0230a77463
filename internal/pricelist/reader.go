package pricelist

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/catalog"
	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
)

// emptyHeader 헤더가 비어 있는 열의 이름
const emptyHeader = "__EMPTY"

// ReadFile 워크북 파일의 첫 번째 시트를 읽습니다.
func ReadFile(path string) ([]catalog.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.System, "가격표 파일을 열 수 없습니다 (path=%q)", path)
	}
	defer f.Close()

	return Read(f)
}

// Read 워크북의 첫 번째 시트를 읽습니다.
//
// 첫 행은 헤더이며, 이후 행은 헤더 이름을 키로 하는 catalog.Row 로 변환됩니다.
// 값이 비어 있는 셀은 Row 에 포함되지 않고, 셀이 하나도 없는 행은 건너뜁니다.
// 시트가 없거나 헤더 행만 있으면 빈 목록을 반환합니다.
func Read(r io.Reader) ([]catalog.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "워크북을 열 수 없습니다")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []catalog.Row{}, nil
	}

	// 숫자 서식(통화, 천 단위 구분 등)이 적용되지 않은 원래 값을 읽는다.
	records, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "시트를 읽을 수 없습니다 (sheet=%q)", sheets[0])
	}

	return toRows(records), nil
}

// toRows 헤더 행과 데이터 행을 catalog.Row 로 변환한다.
func toRows(records [][]string) []catalog.Row {
	rows := []catalog.Row{}
	if len(records) == 0 {
		return rows
	}

	h := newHeaders(records[0])
	for _, record := range records[1:] {
		row := make(catalog.Row, 0, len(record))
		for i, value := range record {
			if value == "" {
				continue
			}
			row = append(row, catalog.Cell{Header: h.at(i), Value: value})
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// headers 열 번호별 헤더 이름. 같은 이름이 반복되면 "_1", "_2" 를 붙이고, 빈 헤더는 "__EMPTY" 로 채운다.
type headers struct {
	names []string
	used  map[string]int
}

func newHeaders(raw []string) *headers {
	h := &headers{used: make(map[string]int, len(raw))}
	for _, name := range raw {
		h.add(name)
	}
	return h
}

func (h *headers) add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = emptyHeader
	}

	unique := name
	if n, dup := h.used[name]; dup {
		unique = name + "_" + strconv.Itoa(n)
		for h.exists(unique) {
			n++
			unique = name + "_" + strconv.Itoa(n)
		}
		h.used[name] = n + 1
	} else {
		h.used[name] = 1
	}
	if unique != name {
		h.used[unique] = 1
	}

	h.names = append(h.names, unique)
}

func (h *headers) exists(name string) bool {
	_, ok := h.used[name]
	return ok
}

// at 열 번호의 헤더 이름. 헤더 행보다 긴 데이터 행의 열은 빈 헤더로 취급한다.
func (h *headers) at(i int) string {
	for len(h.names) <= i {
		h.add("")
	}
	return h.names[i]
}
