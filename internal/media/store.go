package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store keeps uploaded objects and returns the public URL of each.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// PortfolioKey names a new portfolio object of a stylist.
func PortfolioKey(stylistID int64) string {
	return fmt.Sprintf("portfolio/%d/%s.webp", stylistID, uuid.NewString())
}

// DiskStore writes objects below Dir and serves them under BaseURL.
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (d *DiskStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	path := filepath.Join(d.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return d.BaseURL + "/" + key, nil
}
