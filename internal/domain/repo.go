package domain

import "context"

type MusicRepo interface {
	// Insert валидирует и сохраняет запись, возвращает её с id и временем
	Insert(ctx context.Context, m NewMusic) (Music, error)
	// FindAll — все записи в порядке вставки, без пагинации
	FindAll(ctx context.Context) ([]Music, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context)
}
