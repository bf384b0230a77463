package contact

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/config"
	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
)

type fakeTelegramSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeTelegramSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

type fakeMailSender struct {
	sent   []*mail.SGMailV3
	status int
	err    error
}

func (f *fakeMailSender) Send(m *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, m)
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status, Body: "body"}, nil
}

func testSubmission() Submission {
	return Submission{
		ID:         "c0ffee",
		Name:       "Jane",
		Email:      "jane@example.com",
		Message:    "Hello <b>there</b>",
		ReceivedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

// =============================================================================
// Telegram
// =============================================================================

func TestTelegramNotifier_Notify(t *testing.T) {
	t.Parallel()

	t.Run("성공", func(t *testing.T) {
		t.Parallel()

		bot := &fakeTelegramSender{}
		n := &telegramNotifier{bot: bot, chatID: 42}

		require.NoError(t, n.Notify(context.Background(), testSubmission()))
		require.Len(t, bot.sent, 1)
		assert.Equal(t, int64(42), bot.sent[0].ChatID)
		assert.Equal(t, formatText(testSubmission()), bot.sent[0].Text)
		assert.Empty(t, bot.sent[0].ParseMode)
		assert.Equal(t, "telegram", n.Name())
	})

	t.Run("긴 메시지는 잘라서 보낸다", func(t *testing.T) {
		t.Parallel()

		bot := &fakeTelegramSender{}
		n := &telegramNotifier{bot: bot, chatID: 42}

		sub := testSubmission()
		sub.Message = strings.Repeat("가", 5000)

		require.NoError(t, n.Notify(context.Background(), sub))
		require.Len(t, bot.sent, 1)
		assert.Len(t, []rune(bot.sent[0].Text), telegramMessageLimit)
		assert.True(t, strings.HasSuffix(bot.sent[0].Text, "..."))
	})

	t.Run("API 오류", func(t *testing.T) {
		t.Parallel()

		n := &telegramNotifier{bot: &fakeTelegramSender{err: assert.AnError}, chatID: 42}

		err := n.Notify(context.Background(), testSubmission())
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ExecutionFailed))
	})

	t.Run("취소된 컨텍스트", func(t *testing.T) {
		t.Parallel()

		bot := &fakeTelegramSender{}
		n := &telegramNotifier{bot: bot, chatID: 42}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, n.Notify(ctx, testSubmission()), context.Canceled)
		assert.Empty(t, bot.sent)
	})
}

// =============================================================================
// SendGrid
// =============================================================================

func TestSendGridNotifier_Notify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		client   *fakeMailSender
		wantErr  bool
		errMatch string
	}{
		{name: "성공", client: &fakeMailSender{status: http.StatusAccepted}},
		{name: "전송 오류", client: &fakeMailSender{err: assert.AnError}, wantErr: true},
		{name: "4xx 응답", client: &fakeMailSender{status: http.StatusUnauthorized}, wantErr: true, errMatch: "status=401"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := &sendgridNotifier{client: tt.client, from: "shop@example.com", to: "owner@example.com"}
			err := n.Notify(context.Background(), testSubmission())

			require.Len(t, tt.client.sent, 1)
			m := tt.client.sent[0]
			assert.Equal(t, "shop@example.com", m.From.Address)
			assert.Equal(t, "[문의] Jane", m.Subject)
			require.NotNil(t, m.ReplyTo)
			assert.Equal(t, "jane@example.com", m.ReplyTo.Address)
			require.Len(t, m.Content, 2)
			assert.Contains(t, m.Content[1].Value, "Hello &lt;b&gt;there&lt;/b&gt;")

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ExecutionFailed))
			if tt.errMatch != "" {
				assert.Contains(t, err.Error(), tt.errMatch)
			}
		})
	}
}

// =============================================================================
// Factory
// =============================================================================

func TestNewNotifiers(t *testing.T) {
	t.Parallel()

	t.Run("알림 채널이 없으면 로그만 사용", func(t *testing.T) {
		t.Parallel()

		notifiers, err := NewNotifiers(config.ContactConfig{QueueSize: 8})
		require.NoError(t, err)
		require.Len(t, notifiers, 1)
		assert.Equal(t, "log", notifiers[0].Name())
		assert.NoError(t, notifiers[0].Notify(context.Background(), testSubmission()))
	})

	t.Run("SendGrid 활성화", func(t *testing.T) {
		t.Parallel()

		notifiers, err := NewNotifiers(config.ContactConfig{
			QueueSize: 8,
			SendGrid:  config.SendGridConfig{APIKey: "SG.key", From: "shop@example.com", To: "owner@example.com"},
		})
		require.NoError(t, err)
		require.Len(t, notifiers, 2)
		assert.Equal(t, "sendgrid", notifiers[1].Name())
	})
}
