// api/audit/repository.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const auditIndex = "auditlog-events"

type Repository interface {
	SaveAuditEvent(ctx context.Context, auditRequest AuditLogEventRequest) error
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
}

// NewElasticsearchRepository creates a repository backed by the audit log
// Elasticsearch cluster.
func NewElasticsearchRepository(esURL string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient}, nil
}

// SaveAuditEvent indexes a fully assembled audit event.
func (r *ElasticsearchRepository) SaveAuditEvent(ctx context.Context, auditRequest AuditLogEventRequest) error {
	data, err := json.Marshal(auditRequest)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      auditIndex,
		DocumentID: fmt.Sprintf("%d-%s", auditRequest.Occurred.UnixNano(), auditRequest.EventCode),
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing audit event: %s", res.String())
	}

	return nil
}
