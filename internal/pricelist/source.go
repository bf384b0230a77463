package pricelist

import (
	"context"
	"os"
	"strings"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/catalog"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

const component = "pricelist"

const (
	// DefaultEnvVar 가격표 경로를 지정하는 기본 환경 변수
	DefaultEnvVar = "PRICELIST_PATH"

	// DefaultPreferredPath 확장 형식 가격표의 기본 위치
	DefaultPreferredPath = "data/ASI_SAGE_PRICELIST_ENRICHED.xlsx"

	// DefaultPlainPath 일반 형식 가격표의 기본 위치
	DefaultPlainPath = "data/ASI_SAGE_PRICELIST.xlsx"
)

// Source 가격표 파일을 찾는 순서입니다.
//
// Path 가 지정되면 다른 후보는 사용하지 않습니다. 그렇지 않으면 EnvVar 환경 변수의 경로,
// PreferredPath, DefaultPath 순서로 시도하여 처음 읽을 수 있는 파일을 사용합니다.
type Source struct {
	Path          string
	EnvVar        string
	PreferredPath string
	DefaultPath   string

	// Getenv 환경 변수 조회 함수. nil 이면 os.Getenv 를 사용한다.
	Getenv func(string) string
}

// DefaultSource 기본 파일 위치를 사용하는 Source 를 반환합니다.
func DefaultSource() Source {
	return Source{
		EnvVar:        DefaultEnvVar,
		PreferredPath: DefaultPreferredPath,
		DefaultPath:   DefaultPlainPath,
	}
}

// Candidates 시도할 파일 경로를 순서대로 반환합니다. 빈 경로와 중복은 제외됩니다.
func (s Source) Candidates() []string {
	if p := strings.TrimSpace(s.Path); p != "" {
		return []string{p}
	}

	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	var envPath string
	if s.EnvVar != "" {
		envPath = getenv(s.EnvVar)
	}

	var out []string
	seen := make(map[string]struct{}, 3)
	for _, p := range []string{envPath, s.PreferredPath, s.DefaultPath} {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Load 후보 파일 중 처음 읽을 수 있는 파일의 행과 그 경로를 반환합니다.
// 읽을 수 있는 파일이 없으면 빈 목록과 빈 경로를 반환하며, 실패한 후보는 Warn 레벨로 기록됩니다.
func (s Source) Load(ctx context.Context) ([]catalog.Row, string) {
	for _, path := range s.Candidates() {
		if err := ctx.Err(); err != nil {
			applog.WithComponent(component).WithError(err).Warn("가격표 로드가 취소되었습니다")
			return []catalog.Row{}, ""
		}

		rows, err := ReadFile(path)
		if err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"path": path,
			}).WithError(err).Warn("가격표 파일을 읽을 수 없습니다")
			continue
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"path": path,
			"rows": len(rows),
		}).Debug("가격표 파일을 읽었습니다")

		return rows, path
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"candidates": s.Candidates(),
	}).Warn("읽을 수 있는 가격표 파일이 없어 빈 카탈로그를 사용합니다")

	return []catalog.Row{}, ""
}

// LoadProducts 가격표를 읽어 카탈로그 상품 목록을 만듭니다.
func (s Source) LoadProducts(ctx context.Context, rules catalog.Rules) []catalog.Product {
	rows, path := s.Load(ctx)
	products := catalog.Build(rows, rules)

	if path != "" {
		applog.WithComponentAndFields(component, applog.Fields{
			"path":     path,
			"format":   catalog.DetectFormat(rows).String(),
			"rows":     len(rows),
			"products": len(products),
		}).Debug("카탈로그를 만들었습니다")
	}

	return products
}
