package psswd

import (
	"fmt"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes bcrypt учитывает только первые 72 байта.
const maxPasswordBytes = 72

// ErrPasswordTooLong пароль длиннее maxPasswordBytes в байтах. Кириллица проходит проверку max=72 по символам,
// но не по байтам.
var ErrPasswordTooLong = fmt.Errorf("%w: password must not exceed %d bytes", domain.ErrValidation, maxPasswordBytes)

// PasswordHash хеширует пароли инвесторов и администратора. Значение - стоимость bcrypt, ноль означает
// bcrypt.DefaultCost. В тестах используется bcrypt.MinCost.
type PasswordHash int

func (p PasswordHash) HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	cost := int(p)
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt password hash: %w", err)
	}
	return string(hashed), nil
}

// ComparePassword сверяет пароль при входе. Любая ошибка bcrypt считается несовпадением.
func (p PasswordHash) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
