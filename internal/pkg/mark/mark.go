// Package mark 알림 메시지에 사용하는 이모지 상수를 모아 둔 패키지입니다.
package mark

// Mark 이모지 상수 타입
type Mark string

const (
	// 새 문의
	Inbox Mark = "📨"

	// 보낸 사람
	Person Mark = "👤"

	// 이메일
	Email Mark = "✉️"
)

// Prefix 마크 뒤에 구분용 공백을 붙여 text 앞에 둡니다. 빈 마크면 text 를 그대로 반환합니다.
func (m Mark) Prefix(text string) string {
	if m == "" {
		return text
	}
	return string(m) + " " + text
}

func (m Mark) String() string {
	return string(m)
}
