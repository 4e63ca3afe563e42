// internal/util/errors.go
// Error aplikasi bertipe (kode + pesan) untuk kasus yang perlu dibedakan caller.

package util

import (
	"errors"
	"fmt"
)

const (
	CodeBadInput = "bad_input"
	CodeNotFound = "not_found"
	CodeUpstream = "upstream"
)

type AppError struct {
	Code    string // bad_input | not_found | upstream
	Message string
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func BadInput(msg string) AppError { return AppError{Code: CodeBadInput, Message: msg} }
func NotFound(msg string) AppError { return AppError{Code: CodeNotFound, Message: msg} }
func Upstream(msg string) AppError { return AppError{Code: CodeUpstream, Message: msg} }

// HasCode true jika err (atau error yang di-wrap) adalah AppError dengan kode tsb.
func HasCode(err error, code string) bool {
	var ae AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
