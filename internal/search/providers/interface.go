package providers

import (
	"context"

	"jobquest-utils/pkg/models"
)

// Client is implemented by each job-listing provider adapter. Search
// issues one outbound request and normalizes the payload into the
// common JobRecord shape. Implementations return an error for network,
// HTTP, or decode failures; the caller decides how to degrade.
type Client interface {
	Name() string
	Search(ctx context.Context, query, location string) ([]models.JobRecord, error)
}
