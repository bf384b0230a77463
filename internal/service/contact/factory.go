package contact

import (
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/config"
)

// NewNotifiers 설정에서 활성화된 Notifier 목록을 만듭니다. 로그 Notifier 는 항상 첫 번째로 포함됩니다.
func NewNotifiers(cfg config.ContactConfig) ([]Notifier, error) {
	notifiers := []Notifier{logNotifier{}}

	if cfg.Telegram.Enabled() {
		n, err := newTelegramNotifier(cfg.Telegram)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}

	if cfg.SendGrid.Enabled() {
		notifiers = append(notifiers, newSendGridNotifier(cfg.SendGrid))
	}

	return notifiers, nil
}
