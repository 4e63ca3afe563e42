// internal/util/ids.go
// Generator ID untuk menandai satu kali run agent di log & trace.

package util

import (
	"github.com/google/uuid"
)

func NewRunID() string {
	return uuid.New().String()
}
