package blob

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("blob not found")

// Info describe un objeto guardado.
type Info struct {
	Key         string
	Size        int64
	ContentType string
}

// Store es un sumidero opaco de archivos (imágenes de reportes).
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (Info, error)
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
}
