package driver

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type MemgraphDriver struct {
	Driver        neo4j.DriverWithContext
	EmbeddingDims int
}

func NewMemgraphDriver(uri, username, password string, embeddingDims int) (*MemgraphDriver, error) {
	d, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := d.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	if embeddingDims == 0 {
		embeddingDims = 1536
	}

	log.Println("Connected to Memgraph")
	return &MemgraphDriver{Driver: d, EmbeddingDims: embeddingDims}, nil
}

func (d *MemgraphDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *MemgraphDriver) executeQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

func indexName(collection string) string {
	return strings.ToLower(collection) + "_embedding"
}

func (d *MemgraphDriver) AddDocument(ctx context.Context, collection, id, text string, embedding []float32, props map[string]string) error {
	params := map[string]interface{}{
		"id":        id,
		"text":      text,
		"embedding": embedding,
		"props":     stringProps(props),
	}

	_, err := d.executeQuery(ctx, fmt.Sprintf(AddDocumentQueryTmpl, collection), params)
	return err
}

func (d *MemgraphDriver) Query(ctx context.Context, collection string, embedding []float32, filterKey, filterValue string, limit int) ([]Hit, error) {
	params := map[string]interface{}{
		"index":        indexName(collection),
		"limit":        limit,
		"embedding":    embedding,
		"filter_key":   filterKey,
		"filter_value": filterValue,
	}

	result, err := d.executeQuery(ctx, VectorSearchQueryTmpl, params)
	if err != nil {
		return nil, err
	}

	return parseHits(result), nil
}

func (d *MemgraphDriver) FindWhere(ctx context.Context, collection, key, value string, limit int) ([]Hit, error) {
	params := map[string]interface{}{
		"key":   key,
		"value": value,
		"limit": limit,
	}

	result, err := d.executeQuery(ctx, fmt.Sprintf(FindWhereQueryTmpl, collection), params)
	if err != nil {
		return nil, err
	}

	return parseHits(result), nil
}

func parseHits(result neo4j.EagerResult) []Hit {
	var hits []Hit
	for _, record := range result.Records {
		h := Hit{Props: map[string]string{}}
		if v, ok := record.Get("id"); ok {
			h.ID, _ = v.(string)
		}
		if v, ok := record.Get("text"); ok {
			h.Text, _ = v.(string)
		}
		if v, ok := record.Get("distance"); ok {
			switch dist := v.(type) {
			case float64:
				h.Distance = dist
			case float32:
				h.Distance = float64(dist)
			}
		}
		if v, ok := record.Get("props"); ok {
			if m, ok := v.(map[string]interface{}); ok {
				for k, pv := range m {
					if k == "embedding" || k == "text" {
						continue
					}
					if s, ok := pv.(string); ok {
						h.Props[k] = s
					}
				}
			}
		}
		hits = append(hits, h)
	}
	return hits
}

func (d *MemgraphDriver) DeleteWhere(ctx context.Context, collection, key, value string) (int64, error) {
	params := map[string]interface{}{
		"key":   key,
		"value": value,
	}

	result, err := d.executeQuery(ctx, fmt.Sprintf(DeleteWhereQueryTmpl, collection), params)
	if err != nil {
		return 0, err
	}

	for _, record := range result.Records {
		if v, ok := record.Get("deleted"); ok {
			if n, ok := v.(int64); ok {
				return n, nil
			}
		}
	}
	return 0, nil
}

func (d *MemgraphDriver) Count(ctx context.Context, collection string) (int64, error) {
	result, err := d.executeQuery(ctx, fmt.Sprintf(CountQueryTmpl, collection), nil)
	if err != nil {
		return 0, err
	}

	for _, record := range result.Records {
		if v, ok := record.Get("total"); ok {
			if n, ok := v.(int64); ok {
				return n, nil
			}
		}
	}
	return 0, nil
}

func (d *MemgraphDriver) BuildIndices(ctx context.Context) error {
	queries := []string{
		fmt.Sprintf("CREATE INDEX ON :%s(id);", TranslationCollection),
		fmt.Sprintf("CREATE INDEX ON :%s(session_id);", TranslationCollection),
		fmt.Sprintf("CREATE INDEX ON :%s(id);", SessionNoteCollection),
		fmt.Sprintf("CREATE INDEX ON :%s(session_id);", SessionNoteCollection),

		fmt.Sprintf(`CALL vector_search.create_index("%s", "%s", "embedding", %d, "cos");`,
			indexName(TranslationCollection), TranslationCollection, d.EmbeddingDims),
	}

	for _, q := range queries {
		_, err := d.executeQuery(ctx, q, nil)
		if err != nil {
			log.Printf("Warning: failed to create index '%s': %v", q, err)
			// Continue, as index might already exist
		}
	}

	return nil
}

func stringProps(props map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
