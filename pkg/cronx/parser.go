// Package cronx 서버 전역에서 공유하는 Cron 파서 설정을 제공합니다.
package cronx

import "github.com/robfig/cron/v3"

// StandardParser 초 필드를 포함한 6필드 형식과 Descriptor(@every 1m 등)를 해석하는 파서를 반환합니다.
// 5필드 표현식은 허용하지 않습니다.
//
//	"0 */5 * * * *"  5분마다
//	"@hourly"        매시 정각
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}
