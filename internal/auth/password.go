package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength - минимальная длина пароля при регистрации и смене
const MinPasswordLength = 6

// MaxPasswordLength - bcrypt принимает не больше 72 байт
const MaxPasswordLength = 72

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// DummyPasswordHash - хеш с той же стоимостью, что у настоящих.
// Сверка с ним при неизвестном email занимает столько же, сколько с реальным хешем.
func DummyPasswordHash() string {
	dummyHashOnce.Do(func() {
		hash, err := HashPassword("jits-no-such-user")
		if err != nil {
			panic(err)
		}
		dummyHash = hash
	})
	return dummyHash
}
