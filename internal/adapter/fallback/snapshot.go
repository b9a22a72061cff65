package fallback

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/pkg/schema"
)

// LoadSnapshot reads the bundled product snapshot. Avro object container
// files carry the canonical schema; a JSON dump of the same records is
// accepted for development. Decoding is strict and fails closed: a
// malformed snapshot is an error, never a silently coerced catalog.
func LoadSnapshot(path string) (*Catalog, error) {
	const op = "fallback.LoadSnapshot"
	log := slog.With("op", op)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	var records []schema.ProductSnapshotV1
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".avro":
		records, err = schema.ReadSnapshot(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	case ".json":
		dec := json.NewDecoder(f)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported snapshot format %q", op, ext)
	}

	log.Info("snapshot loaded", "path", path, "nProducts", len(records))
	return NewCatalog(snapshotToDomain(records)), nil
}

func snapshotToDomain(vs []schema.ProductSnapshotV1) []domain.Product {
	out := make([]domain.Product, 0, len(vs))
	for _, v := range vs {
		out = append(out, domain.Product{
			ID:            v.ID,
			Name:          v.Name,
			Brand:         v.Brand,
			Description:   v.Description,
			SKU:           v.SKU,
			Status:        v.Status,
			Price:         v.Price,
			OriginalPrice: v.OriginalPrice,
			Discount:      v.Discount,
			InStock:       v.InStock,
			Stock:         v.Stock,
			Image:         v.Image,
			Images:        v.Images,
			Rating:        v.Rating,
			ReviewCount:   v.ReviewCount,

			Category:        v.Category,
			ProductType:     v.ProductType,
			SkinType:        v.SkinType,
			HairType:        v.HairType,
			HairConcern:     v.HairConcern,
			HairTexture:     v.HairTexture,
			SkinConcern:     v.SkinConcern,
			SkinTone:        v.SkinTone,
			Finish:          v.Finish,
			FragranceFamily: v.FragranceFamily,
			Concentration:   v.Concentration,
			Season:          v.Season,
			Ingredients:     v.Ingredients,
			Benefits:        v.Benefits,

			Flags: domain.ProductFlags{
				New:                      v.Flags.IsNew,
				Sale:                     v.Flags.IsSale,
				Trending:                 v.Flags.IsTrending,
				CrueltyFree:              v.Flags.CrueltyFree,
				Vegan:                    v.Flags.Vegan,
				Luxury:                   v.Flags.Luxury,
				CleanBeauty:              v.Flags.CleanBeauty,
				DermatologistRecommended: v.Flags.DermatologistRecommended,
				SalonProfessional:        v.Flags.SalonProfessional,
				SulfateFree:              v.Flags.SulfateFree,
				LongLasting:              v.Flags.LongLasting,
				FragranceFree:            v.Flags.FragranceFree,
			},
		})
	}
	return out
}
