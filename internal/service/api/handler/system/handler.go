// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 상점 고객용 API 와 무관한 운영용 엔드포인트를 처리합니다.
package system

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/catalog"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/version"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/constants"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/service/api/model/system"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// CatalogProbe 헬스체크에서 카탈로그 상태를 확인하는 데 필요한 최소 기능입니다.
type CatalogProbe interface {
	ListProducts(ctx context.Context) []catalog.Product
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	catalog CatalogProbe

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(probe CatalogProbe, buildInfo version.Info) *Handler {
	if probe == nil {
		panic(constants.PanicMsgCatalogRequired)
	}

	return &Handler{
		catalog: probe,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 카탈로그의 상태를 확인합니다.
// @Description 가격표에서 상품을 하나도 읽지 못하면 catalog 의존성이 unhealthy 로 표시됩니다.
// @Description 상태와 관계없이 200 을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	uptime := int64(time.Since(h.serverStartTime).Seconds())

	deps := map[string]system.DependencyStatus{
		constants.DependencyCatalog: h.checkCatalog(c.Request().Context()),
	}

	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       uptime,
		Dependencies: deps,
	})
}

func (h *Handler) checkCatalog(ctx context.Context) system.DependencyStatus {
	start := time.Now()
	products := h.catalog.ListProducts(ctx)
	latency := time.Since(start).Milliseconds()

	if len(products) == 0 {
		return system.DependencyStatus{
			Status:    constants.HealthStatusUnhealthy,
			LatencyMs: latency,
			Message:   constants.MsgDepStatusCatalogEmpty,
		}
	}

	return system.DependencyStatus{
		Status:    constants.HealthStatusHealthy,
		LatencyMs: latency,
		Message:   fmt.Sprintf(constants.MsgDepStatusHealthy, len(products)),
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
