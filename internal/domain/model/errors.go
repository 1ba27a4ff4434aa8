package model

import (
	"errors"
	"fmt"
)

// エラーの種類
type ErrorKind string

const (
	//idやslugに一致するものが無い
	KindNotFound ErrorKind = "NOT_FOUND"
	//呼び出し側の入力が不正
	KindValidation ErrorKind = "VALIDATION"
	//ネットワーク越しの実装向けに予約（メモリ実装では発生しない）
	KindTransient ErrorKind = "TRANSIENT"
)

// Error は種類と表示用の詳細を持つ。
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Detailが空のsentinelとは種類だけで一致させる
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Detail == "" {
		return t.Kind == e.Kind
	}
	return t.Kind == e.Kind && t.Detail == e.Detail
}

var (
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrValidation = &Error{Kind: KindValidation}
	ErrTransient  = &Error{Kind: KindTransient}
)

func NewNotFound(detail string) error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

func NewValidation(detail string) error {
	return &Error{Kind: KindValidation, Detail: detail}
}

func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
