package ports

import (
	"context"
	"time"
)

// ObjectStorage : S3 для картинок позиций меню
type ObjectStorage interface {
	GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error)
	GeneratePresignedPutURL(ctx context.Context, key, contentType string, expire time.Duration) (string, error)
	ObjectContentType(ctx context.Context, key string) (string, error)
	DeleteObject(ctx context.Context, key string) error
}
