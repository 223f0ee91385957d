package repository

import "context"

// Storage key-value хранилище для Cache Manager. Реализации: memory (тесты,
// запуск без каталога данных) и sqlite (устройство). Ключи стабильны между
// версиями приложения, это контракт миграции.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error

	// RemovePrefix инвалидация целого namespace (logout, порча кеша).
	RemovePrefix(ctx context.Context, prefix string) error
}
