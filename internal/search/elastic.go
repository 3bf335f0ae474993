package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/olivere/elastic/v7"

	"github.com/asistenciapp/backend/internal/domain"
)

const employeeIndex = "employees"

// employeeDoc mirrors domain.Employee for ES storage.
type employeeDoc struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EmployeeNumber string `json:"employee_number"`
	Department     string `json:"department"`
}

// ElasticEmployeeSearch wraps an olivere/elastic client for roster name
// search. The index is read-side only; the attendance store stays the
// single source of truth.
type ElasticEmployeeSearch struct {
	client *elastic.Client
}

// NewElasticEmployeeSearch creates a client for Elasticsearch 7.x.
func NewElasticEmployeeSearch(url string) (*ElasticEmployeeSearch, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(false), // required when ES runs in Docker or cloud
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	return &ElasticEmployeeSearch{client: client}, nil
}

// IndexEmployee indexes one employee using its roster id as document id,
// so re-indexing the same employee overwrites instead of duplicating.
func (es *ElasticEmployeeSearch) IndexEmployee(ctx context.Context, e domain.Employee) error {
	doc := employeeDoc{
		ID:             e.ID,
		Name:           e.Name,
		EmployeeNumber: e.EmployeeNumber,
		Department:     e.Department,
	}
	_, err := es.client.Index().
		Index(employeeIndex).
		Id(e.ID).
		BodyJson(doc).
		Refresh("true").
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index employee %s: %w", e.ID, err)
	}
	return nil
}

// SearchByName runs a full-text match over employee names and returns the
// matching roster ids.
func (es *ElasticEmployeeSearch) SearchByName(ctx context.Context, name string) ([]string, error) {
	query := elastic.NewMatchQuery("name", name)

	result, err := es.client.Search().
		Index(employeeIndex).
		Query(query).
		Size(100).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("employee search failed: %w", err)
	}

	ids := make([]string, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var doc employeeDoc
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			continue
		}
		ids = append(ids, doc.ID)
	}
	return ids, nil
}
