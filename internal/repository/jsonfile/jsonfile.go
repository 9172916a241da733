// Package jsonfile persists the two storefront collections (orders, reviews)
// as flat JSON files with full-file replacement on every write.
package jsonfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/ibeloyar/shopfront/internal/model"
	"go.uber.org/zap"
)

const (
	ordersFile  = "orders.json"
	reviewsFile = "reviews.json"

	fileMode = 0o644
	dirMode  = 0o755
)

type Repository struct {
	ordersPath  string
	reviewsPath string
	strict      bool
	lg          *zap.SugaredLogger
}

// New creates the data directory if needed and seeds absent collection files
// with an empty collection. With strict=false reads are fail-open: an absent
// or corrupt file yields an empty collection instead of an error.
func New(dataDir string, strict bool, lg *zap.SugaredLogger) (*Repository, error) {
	if err := os.MkdirAll(dataDir, dirMode); err != nil {
		return nil, err
	}

	r := &Repository{
		ordersPath:  filepath.Join(dataDir, ordersFile),
		reviewsPath: filepath.Join(dataDir, reviewsFile),
		strict:      strict,
		lg:          lg,
	}

	for _, path := range []string{r.ordersPath, r.reviewsPath} {
		if err := seedFile(path); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func seedFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return os.WriteFile(path, []byte("[]"), fileMode)
}

func (r *Repository) ReadOrders() ([]model.Order, error) {
	var orders []model.Order
	if err := r.readFile(r.ordersPath, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *Repository) WriteOrders(orders []model.Order) error {
	return r.writeFile(r.ordersPath, orders)
}

func (r *Repository) ReadReviews() ([]model.Review, error) {
	var reviews []model.Review
	if err := r.readFile(r.reviewsPath, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *Repository) WriteReviews(reviews []model.Review) error {
	return r.writeFile(r.reviewsPath, reviews)
}

// readFile unmarshals the whole collection into out. out is left untouched
// (an empty collection) when the file is absent or corrupt and strict mode
// is off.
func (r *Repository) readFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if r.strict {
			return model.ErrStorageFailure
		}

		r.lg.Warnf("storage read failed, returning empty collection: %v", err)
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		if r.strict {
			return model.ErrStorageFailure
		}

		r.lg.Warnf("storage contains invalid JSON at %s, returning empty collection: %v", path, err)
		return nil
	}

	return nil
}

// writeFile replaces the file's full contents with the pretty-printed
// collection. A crash mid-write may leave a truncated file; recovery from
// partial writes is not provided.
func (r *Repository) writeFile(path string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, fileMode)
}
