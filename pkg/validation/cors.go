package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ValidateCORSOrigin "scheme://host[:port]" 형식의 Origin 또는 "*" 인지 검증합니다.
// 경로, 쿼리, 프래그먼트, 사용자 정보는 허용하지 않습니다.
func ValidateCORSOrigin(origin string) error {
	o := strings.TrimSpace(origin)
	switch {
	case o == "*":
		return nil
	case o == "":
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	case strings.HasSuffix(o, "/"):
		return fmt.Errorf("CORS Origin은 '/'로 끝날 수 없습니다 (input=%q)", o)
	}

	u, err := url.Parse(o)
	if err != nil {
		return fmt.Errorf("CORS Origin이 유효한 URL 형식이 아닙니다 (input=%q): %w", o, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin은 'http' 또는 'https'만 허용됩니다 (input=%q)", o)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return fmt.Errorf("CORS Origin은 경로, 쿼리, 프래그먼트, 사용자 정보를 포함할 수 없습니다 (input=%q)", o)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트가 유효하지 않습니다 (input=%q)", o)
		}
		if err := ValidatePort(port); err != nil {
			return err
		}
	}

	host := u.Hostname()
	if host == "" {
		return fmt.Errorf("CORS Origin에 호스트가 없습니다 (input=%q)", o)
	}
	return ValidateHostname(host)
}

// ValidatePort 1-65535 범위인지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname localhost, IP 주소 또는 RFC 1123 호스트명인지 검증합니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}
	if len(host) > 253 {
		return fmt.Errorf("호스트명은 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, l := range labels {
		if l == "" || len(l) > 63 {
			return fmt.Errorf("호스트명 레이블 길이가 올바르지 않습니다 (host=%q)", host)
		}
		if l[0] == '-' || l[len(l)-1] == '-' {
			return fmt.Errorf("레이블은 하이픈(-)으로 시작하거나 끝날 수 없습니다 (label=%q)", l)
		}
		for _, r := range l {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
				return fmt.Errorf("호스트명은 영문, 숫자, 하이픈(-)으로만 구성되어야 합니다 (host=%q)", host)
			}
		}
	}

	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인은 숫자로만 구성될 수 없습니다 (host=%q)", host)
	}
	return nil
}
