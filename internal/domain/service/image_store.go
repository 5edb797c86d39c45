package service

import (
	"context"
	"io"
)

// ImageStore keeps catalog images and hands back the URL clients load them from.
type ImageStore interface {
	// Put stores the content under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Open returns a reader for key together with its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
