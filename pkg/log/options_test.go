package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "not-a-dir")
	assert.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{name: "성공: 운영 프로파일", opts: NewProductionOptions("storefront")},
		{name: "성공: 개발 프로파일", opts: NewDevelopmentOptions("storefront")},
		{name: "실패: 이름 없음", opts: Options{}, wantErr: "Name"},
		{name: "실패: 디렉터리 경로가 파일", opts: Options{Name: "a", Dir: file}, wantErr: "파일로 존재"},
		{name: "실패: 음수 보관 일수", opts: Options{Name: "a", MaxAge: -1}, wantErr: "0 이상"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestProfiles(t *testing.T) {
	t.Parallel()

	prod := NewProductionOptions("storefront")
	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.EnableConsoleLog)

	dev := NewDevelopmentOptions("storefront")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
}

func TestWithComponentAndFields(t *testing.T) {
	t.Parallel()

	in := Fields{"slug": "classic-mug"}
	e := WithComponentAndFields("catalog", in)

	assert.Equal(t, "catalog", e.Data["component"])
	assert.Equal(t, "classic-mug", e.Data["slug"])
	assert.NotContains(t, in, "component")
}
