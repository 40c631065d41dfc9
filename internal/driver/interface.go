package driver

import (
	"context"
)

// Hit is one ranked result from a nearest-neighbor query. Similarity is
// derived by callers as 1 - Distance.
type Hit struct {
	ID       string
	Text     string
	Distance float64
	Props    map[string]string
}

// VectorDriver abstracts the similarity index. The index supports at most
// one equality filter per query; a second filter dimension has to be
// applied by the caller against the returned candidates.
type VectorDriver interface {
	AddDocument(ctx context.Context, collection, id, text string, embedding []float32, props map[string]string) error
	Query(ctx context.Context, collection string, embedding []float32, filterKey, filterValue string, limit int) ([]Hit, error)
	FindWhere(ctx context.Context, collection, key, value string, limit int) ([]Hit, error)
	DeleteWhere(ctx context.Context, collection, key, value string) (int64, error)
	Count(ctx context.Context, collection string) (int64, error)
	BuildIndices(ctx context.Context) error
	Close(ctx context.Context) error
}
