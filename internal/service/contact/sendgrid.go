package contact

import (
	"context"
	"html"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/config"
	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
)

// mailSender sendgrid.Client 중 메일 발송에 필요한 부분입니다.
type mailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

type sendgridNotifier struct {
	client mailSender
	from   string
	to     string
}

func newSendGridNotifier(cfg config.SendGridConfig) Notifier {
	return &sendgridNotifier{
		client: sendgrid.NewSendClient(cfg.APIKey),
		from:   cfg.From,
		to:     cfg.To,
	}
}

func (n *sendgridNotifier) Name() string { return "sendgrid" }

func (n *sendgridNotifier) Notify(ctx context.Context, s Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text := formatText(s)
	message := mail.NewSingleEmail(
		mail.NewEmail("Storefront", n.from),
		subject(s),
		mail.NewEmail("", n.to),
		text,
		"<pre>"+html.EscapeString(text)+"</pre>",
	)
	// 답장은 문의한 고객에게 바로 가도록 한다.
	message.SetReplyTo(mail.NewEmail(s.Name, s.Email))

	resp, err := n.client.Send(message)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ExecutionFailed, "SendGrid 메일 발송에 실패했습니다")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return apperrors.Newf(apperrors.ExecutionFailed, "SendGrid 메일 발송에 실패했습니다 (status=%d, body=%s)", resp.StatusCode, resp.Body)
	}
	return nil
}
