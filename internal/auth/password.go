package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша.
// Сравнение внутри bcrypt выполняется за константное время.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword проверяет сложность пароля: минимум 8 символов,
// хотя бы одна цифра и хотя бы одна буква.
// Возвращает список нарушенных правил (пустой = пароль принят).
func ValidatePassword(password string) []string {
	var violations []string

	if len(password) < 8 {
		violations = append(violations, "password must be at least 8 characters long")
	}

	hasDigit := false
	hasLetter := false
	for _, c := range password {
		if unicode.IsDigit(c) {
			hasDigit = true
		}
		if unicode.IsLetter(c) {
			hasLetter = true
		}
	}

	if !hasDigit {
		violations = append(violations, "password must contain at least one digit")
	}
	if !hasLetter {
		violations = append(violations, "password must contain at least one letter")
	}

	return violations
}
