// Package errors 스토어프론트 서버 전용 에러 타입을 제공합니다.
//
// 모든 에러는 ErrorType 으로 분류되며 Wrap 계열 함수로 원인 에러를 감싸 체인을 구성합니다.
// HTTP 계층은 UnderlyingType 으로 체인의 가장 안쪽 분류를 확인하여 응답 코드를 결정합니다.
//
//	if err != nil {
//	    return errors.Wrap(err, errors.System, "가격표 파일을 열 수 없습니다")
//	}
//
//	if errors.Is(err, errors.NotFound) {
//	    // 404 응답
//	}
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 분류 정보와 호출 위치를 함께 담는 에러입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// Type 에러의 분류를 반환합니다.
func (e *AppError) Type() ErrorType { return e.errType }

// Message 원인 에러를 제외한 메시지를 반환합니다.
func (e *AppError) Message() string { return e.message }

// Stack 에러가 생성된 시점의 호출 스택을 반환합니다.
func (e *AppError) Stack() []StackFrame { return e.stack }

func (e *AppError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.errType, e.message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
}

func (e *AppError) Unwrap() error { return e.cause }

// Format %+v 로 출력하면 원인 체인과 스택 정보를 함께 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.writeDetail(s, verb)
			return
		}
		io.WriteString(s, e.Error())
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *AppError) writeDetail(s fmt.State, verb rune) {
	fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

	// 스택은 체인의 끝(원인이 없거나 외부 에러를 감싼 경우)에서만 한 번 출력한다.
	var inner *AppError
	if (e.cause == nil || !errors.As(e.cause, &inner)) && len(e.stack) > 0 {
		io.WriteString(s, "\nStack trace:")
		for _, f := range e.stack {
			fn := f.Function
			if i := strings.LastIndex(fn, "/"); i >= 0 {
				fn = fn[i+1:]
			}
			fmt.Fprintf(s, "\n\t%s:%d %s", f.File, f.Line, fn)
		}
	}

	if e.cause == nil {
		return
	}
	io.WriteString(s, "\nCaused by:\n")
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
	} else {
		fmt.Fprintf(s, "\t%v", e.cause)
	}
}

func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		errType: errType,
		message: message,
		cause:   cause,
		stack:   captureStack(callerSkip),
	}
}

// New 주어진 분류의 새 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil)
}

// Newf 포맷 문자열로 메시지를 구성하여 새 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil)
}

// Wrap err 을 원인으로 갖는 새 에러를 생성합니다. err 이 nil 이면 nil 을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err)
}

// Wrapf Wrap 의 포맷 문자열 버전입니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err)
}

// Is 에러 체인에 errType 분류의 AppError 가 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
	}
	return false
}

// As 표준 errors.As 를 그대로 노출합니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 체인의 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	if err == nil {
		return nil
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// UnderlyingType 체인에서 가장 안쪽에 있는 AppError 의 분류를 반환합니다.
// AppError 가 없으면 Unknown 입니다.
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for ; err != nil; err = errors.Unwrap(err) {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
	}
	return t
}
