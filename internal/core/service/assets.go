package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

// Asset host folders, one per resource type.
const (
	folderAbout    = "about"
	folderSkills   = "skills"
	folderProducts = "products"
)

// maxAdditionalImages caps the gallery uploads accepted with one product request.
const maxAdditionalImages = 5

func uploadAsset(ctx context.Context, store ports.AssetStore, folder string, file ports.Upload) (string, error) {
	if store == nil {
		return "", domain.ErrUploadsDisabled
	}
	url, err := store.Upload(ctx, folder, file)
	if err != nil {
		return "", fmt.Errorf("upload %s to %s: %w", file.Filename, folder, err)
	}
	return url, nil
}

// uploadAssets pushes files concurrently and returns their URLs in input
// order. The first failure cancels the remaining uploads.
func uploadAssets(ctx context.Context, store ports.AssetStore, folder string, files []ports.Upload) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if store == nil {
		return nil, domain.ErrUploadsDisabled
	}

	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f // per-iteration copies (go.mod targets go 1.21)
		g.Go(func() error {
			url, err := uploadAsset(gctx, store, folder, f)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
