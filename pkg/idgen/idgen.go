package idgen

import (
	"strings"

	"github.com/google/uuid"
)

const tokenLength = 12

// Generator генерирует идентификаторы бронирований вида BK-1a2b3c4d5e6f
// Токен берётся из случайного UUID v4, поэтому не зависит от времени запроса
type Generator struct {
	prefix string
}

// New создает генератор с указанным префиксом
func New(prefix string) *Generator {
	return &Generator{prefix: prefix}
}

// NewID возвращает новый идентификатор
func (g *Generator) NewID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return g.prefix + token[:tokenLength]
}
