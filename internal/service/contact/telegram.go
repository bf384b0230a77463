package contact

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/config"
	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
	applog "github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/log"
	"github.com/luis-photousa/asi-sage-landing-pagev0.1/pkg/strutil"
)

// telegramHTTPClientTimeout 텔레그램 API 호출 시 HTTP 클라이언트 타임아웃
const telegramHTTPClientTimeout = 30 * time.Second

// telegramMessageLimit 텔레그램 메시지 한 건의 최대 길이(문자 수)
const telegramMessageLimit = 4096

// telegramSender tgbotapi.BotAPI 중 메시지 전송에 필요한 부분입니다.
type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramNotifier struct {
	bot    telegramSender
	chatID int64
}

// newTelegramNotifier 봇 API 클라이언트를 초기화하여 텔레그램 Notifier 를 생성합니다.
// 초기화 과정에서 봇 토큰의 유효성을 텔레그램 서버에 확인합니다.
func newTelegramNotifier(cfg config.TelegramConfig) (Notifier, error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"bot_token": strutil.Mask(cfg.BotToken),
		"chat_id":   cfg.ChatID,
	}).Debug("텔레그램 봇 API 클라이언트를 초기화합니다")

	// 기본 http.DefaultClient 는 타임아웃이 없으므로 명시적으로 지정한다.
	client := &http.Client{Timeout: telegramHTTPClientTimeout}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
	}

	return &telegramNotifier{bot: bot, chatID: cfg.ChatID}, nil
}

func (n *telegramNotifier) Name() string { return "telegram" }

func (n *telegramNotifier) Notify(ctx context.Context, s Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text := formatText(s)
	if r := []rune(text); len(r) > telegramMessageLimit {
		text = string(r[:telegramMessageLimit-3]) + "..."
	}

	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		return apperrors.Wrap(err, apperrors.ExecutionFailed, "텔레그램 메시지 전송에 실패했습니다")
	}
	return nil
}
