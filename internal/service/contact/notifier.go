package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/mark"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
)

// Notifier 접수된 문의를 외부 채널로 전달합니다.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, s Submission) error
}

// logNotifier 문의 내용을 로그로만 남깁니다. 항상 등록됩니다.
type logNotifier struct{}

func (logNotifier) Name() string { return "log" }

func (logNotifier) Notify(_ context.Context, s Submission) error {
	applog.WithComponentAndFields(component, applog.Fields{
		"submission_id": s.ID,
		"name":          s.Name,
		"email":         s.Email,
		"message_len":   len(s.Message),
	}).Info("새 문의가 접수되었습니다")
	return nil
}

// subject 알림 제목
func subject(s Submission) string {
	return fmt.Sprintf("[문의] %s", s.Name)
}

// formatText 텍스트 알림 본문을 만듭니다.
func formatText(s Submission) string {
	var sb strings.Builder
	sb.WriteString(mark.Inbox.Prefix("새 문의가 접수되었습니다\n\n"))
	sb.WriteString(mark.Person.Prefix(fmt.Sprintf("이름: %s\n", s.Name)))
	sb.WriteString(mark.Email.Prefix(fmt.Sprintf("이메일: %s\n", s.Email)))
	fmt.Fprintf(&sb, "접수 시각: %s\n", s.ReceivedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&sb, "접수 번호: %s\n\n", s.ID)
	sb.WriteString(s.Message)
	return sb.String()
}
