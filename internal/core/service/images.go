package service

import (
	"context"
	"sync"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/glowmart/storefront/pkg/imageurl"
)

// An ImageState is the per-index outcome of preloading one product image.
type ImageState struct {
	Index  int
	URLs   imageurl.SizeSet
	Loaded bool
	Err    error
}

// An ImagePreloader resolves every image of a product and warms the
// medium variant. Individual failures never fail the batch: a product
// with one broken image still reports the rest as loaded.
type ImagePreloader struct {
	checker port.ImageChecker
}

func NewImagePreloader(checker port.ImageChecker) ImagePreloader {
	return ImagePreloader{checker}
}

// Preload settles all images concurrently and returns per-index states.
// A nil product yields no work.
func (ip ImagePreloader) Preload(ctx context.Context, p *domain.Product) []ImageState {
	if p == nil {
		return nil
	}

	refs := p.DisplayImages()
	states := make([]ImageState, len(refs))

	var wg sync.WaitGroup
	for i, ref := range refs {
		states[i] = ImageState{Index: i, URLs: imageurl.Variants(ref)}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := ip.checker.Check(ctx, states[i].URLs.Medium); err != nil {
				states[i].Err = err
				return
			}
			states[i].Loaded = true
		}(i)
	}
	wg.Wait()

	return states
}

// LoadedURLs filters the settled states down to the display URLs that
// actually loaded, preserving image order.
func LoadedURLs(states []ImageState) []string {
	out := make([]string, 0, len(states))
	for _, st := range states {
		if st.Loaded {
			out = append(out, st.URLs.Medium)
		}
	}
	return out
}
