package contact

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/luis-photousa/asi-sage-landing-pagev0.1/internal/pkg/errors"
)

func TestForm_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		form    Form
		wantErr bool
	}{
		{name: "모든 필드 입력", form: Form{Name: "Jane", Email: "jane@example.com", Message: "Hello"}},
		{name: "이메일 형식은 검사하지 않음", form: Form{Name: "Jane", Email: "not-an-email", Message: "Hello"}},
		{name: "이름 누락", form: Form{Email: "jane@example.com", Message: "Hello"}, wantErr: true},
		{name: "이메일 누락", form: Form{Name: "Jane", Message: "Hello"}, wantErr: true},
		{name: "내용 누락", form: Form{Name: "Jane", Email: "jane@example.com"}, wantErr: true},
		{name: "공백만 입력", form: Form{Name: "  ", Email: "jane@example.com", Message: "Hello"}, wantErr: true},
		{name: "모두 비어 있음", form: Form{}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.form.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
				assert.Contains(t, err.Error(), ErrMsgMissingFields)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewSubmission(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	sub, err := NewSubmission(Form{Name: " Jane ", Email: " jane@example.com\n", Message: "\tHello "}, now)
	require.NoError(t, err)

	assert.Equal(t, "Jane", sub.Name)
	assert.Equal(t, "jane@example.com", sub.Email)
	assert.Equal(t, "Hello", sub.Message)
	assert.Equal(t, now, sub.ReceivedAt)
	_, parseErr := uuid.Parse(sub.ID)
	assert.NoError(t, parseErr)

	other, err := NewSubmission(Form{Name: "Jane", Email: "jane@example.com", Message: "Hello"}, now)
	require.NoError(t, err)
	assert.NotEqual(t, sub.ID, other.ID)

	_, err = NewSubmission(Form{}, now)
	assert.Error(t, err)
}

func TestFormatText(t *testing.T) {
	t.Parallel()

	sub := Submission{
		ID:         "3f1c",
		Name:       "Jane",
		Email:      "jane@example.com",
		Message:    "Do you ship to Canada?",
		ReceivedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}

	text := formatText(sub)
	assert.True(t, strings.HasPrefix(text, "📨 새 문의가 접수되었습니다\n\n"))
	assert.Contains(t, text, "이름: Jane\n")
	assert.Contains(t, text, "이메일: jane@example.com\n")
	assert.Contains(t, text, "접수 시각: 2024-05-01 09:30:00 UTC\n")
	assert.Contains(t, text, "접수 번호: 3f1c\n")
	assert.True(t, len(text) > len(sub.Message))
	assert.Equal(t, "Do you ship to Canada?", text[len(text)-len(sub.Message):])
	assert.Equal(t, "[문의] Jane", subject(sub))
}
