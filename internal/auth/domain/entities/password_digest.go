package entities

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// ErrPasswordDigestNotReadable возвращается при любой попытке прочитать хэш пароля
// вне слоя хранения и процедуры верификации.
var ErrPasswordDigestNotReadable = errors.New("password hashes may not be viewed")

// PasswordDigest - непрозрачное значение с хэшем пароля. Прочитать хэш через
// публичный интерфейс нельзя: String и MarshalJSON скрывают значение, наружу
// хэш выходит только через driver.Valuer при записи в базу.
type PasswordDigest struct {
	hash string
}

// DigestFromHash оборачивает готовый хэш. Используется сервисом хэширования
// и слоем хранения; конструктора из открытого пароля у сущности нет.
func DigestFromHash(hash string) PasswordDigest {
	return PasswordDigest{hash: hash}
}

// IsZero сообщает, задан ли хэш.
func (d PasswordDigest) IsZero() bool {
	return d.hash == ""
}

// Value возвращает хэш для записи в базу данных.
func (d PasswordDigest) Value() (driver.Value, error) {
	if d.hash == "" {
		return nil, fmt.Errorf("storing password digest: %w", ErrEmptyPassword)
	}
	return d.hash, nil
}

// Scan читает хэш из базы данных.
func (d *PasswordDigest) Scan(src any) error {
	switch v := src.(type) {
	case string:
		d.hash = v
		return nil
	case []byte:
		d.hash = string(v)
		return nil
	default:
		return fmt.Errorf("scanning password digest: unsupported type %T", src)
	}
}

// String скрывает хэш при форматировании и логировании.
func (d PasswordDigest) String() string {
	return "[redacted]"
}

// GoString скрывает хэш при форматировании через %#v.
func (d PasswordDigest) GoString() string {
	return "entities.PasswordDigest{hash:\"[redacted]\"}"
}

// MarshalJSON запрещает сериализацию хэша.
func (d PasswordDigest) MarshalJSON() ([]byte, error) {
	return nil, ErrPasswordDigestNotReadable
}
