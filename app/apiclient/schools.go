package apiclient

import (
	"context"

	"github.com/angdmz/mattilda/app/models"
)

// ListSchools fetches every school.
func (c *Client) ListSchools(ctx context.Context) ([]models.School, error) {
	var schools []models.School
	if err := c.get(ctx, "/schools/", nil, &schools); err != nil {
		return nil, err
	}
	return schools, nil
}

// GetSchool fetches one school by id.
func (c *Client) GetSchool(ctx context.Context, id string) (*models.School, error) {
	var school models.School
	if err := c.get(ctx, "/schools/"+id, nil, &school); err != nil {
		return nil, err
	}
	return &school, nil
}

// CreateSchool creates a school and returns the stored entity.
func (c *Client) CreateSchool(ctx context.Context, req models.SchoolCreate) (*models.School, error) {
	var school models.School
	if err := c.post(ctx, "/schools/", req, &school); err != nil {
		return nil, err
	}
	return &school, nil
}

// UpdateSchool updates a school's mutable fields.
func (c *Client) UpdateSchool(ctx context.Context, id string, req models.SchoolUpdate) (*models.School, error) {
	var school models.School
	if err := c.put(ctx, "/schools/"+id, req, &school); err != nil {
		return nil, err
	}
	return &school, nil
}

// DeleteSchool removes a school. Irreversible.
func (c *Client) DeleteSchool(ctx context.Context, id string) error {
	return c.delete(ctx, "/schools/"+id)
}
