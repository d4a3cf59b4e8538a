package ports

import (
	"context"
	"io"
)

// Upload describes a file submitted with a request. Open is called by the
// asset store, which closes the returned reader.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// AssetStore pushes images to the external asset host and returns their public URL.
type AssetStore interface {
	Upload(ctx context.Context, folder string, file Upload) (string, error)
}
