package service

import (
	"math/rand/v2"
	"strings"

	"github.com/avc-dev/link-shortener/internal/model"
)

const (
	DefaultCodeLength = 6
	// Base62Alphabet латинские буквы в обоих регистрах и цифры
	Base62Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator генерирует коды из независимых равновероятных символов алфавита.
// Безопасен для конкурентного использования
type CodeGenerator struct {
	length   int
	alphabet []rune
}

// NewCodeGenerator создает генератор кодов заданной длины над алфавитом.
// Повторяющиеся символы алфавита учитываются один раз
func NewCodeGenerator(length int, alphabet string) (*CodeGenerator, error) {
	if length <= 0 || alphabet == "" {
		return nil, ErrInvalidGenerator
	}

	var unique []rune
	for _, r := range alphabet {
		if !strings.ContainsRune(string(unique), r) {
			unique = append(unique, r)
		}
	}

	return &CodeGenerator{
		length:   length,
		alphabet: unique,
	}, nil
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() model.Code {
	result := make([]rune, g.length)

	for i := range result {
		result[i] = g.alphabet[rand.IntN(len(g.alphabet))]
	}

	return model.Code(result)
}
