package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var spreadsheetExts = map[string]bool{".xlsx": true, ".xlsm": true, ".xltx": true, ".xltm": true}

// ValidateFile 경로가 읽을 수 있는 일반 파일인지 검증합니다.
func ValidateFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("파일 경로가 비어 있습니다")
	}
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("파일이 존재하지 않습니다 (path=%q)", path)
		}
		return fmt.Errorf("파일 정보를 확인할 수 없습니다 (path=%q): %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("해당 경로는 일반 파일이어야 합니다 (path=%q)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("파일을 읽을 수 없습니다 (path=%q): %w", path, err)
	}
	return f.Close()
}

// ValidateSpreadsheetPath 가격표 경로의 확장자가 지원하는 워크북 형식인지 검증합니다.
// 파일 존재 여부는 확인하지 않습니다. 파일이 없으면 빈 카탈로그로 처리되기 때문입니다.
func ValidateSpreadsheetPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("가격표 경로가 비어 있습니다")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !spreadsheetExts[ext] {
		return fmt.Errorf("지원하지 않는 가격표 형식입니다 (path=%q, ext=%q)", path, ext)
	}
	return nil
}
