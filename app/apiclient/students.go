package apiclient

import (
	"context"
	"net/url"

	"github.com/angdmz/mattilda/app/models"
)

// ListStudents fetches students, optionally filtered by school.
func (c *Client) ListStudents(ctx context.Context, schoolID string) ([]models.Student, error) {
	var query url.Values
	if schoolID != "" {
		query = url.Values{"school_id": {schoolID}}
	}
	var students []models.Student
	if err := c.get(ctx, "/students/", query, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent fetches one student by id.
func (c *Client) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if err := c.get(ctx, "/students/"+id, nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateStudent creates a student and returns the stored entity.
func (c *Client) CreateStudent(ctx context.Context, req models.StudentCreate) (*models.Student, error) {
	var student models.Student
	if err := c.post(ctx, "/students/", req, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStudent updates a student's mutable fields.
func (c *Client) UpdateStudent(ctx context.Context, id string, req models.StudentUpdate) (*models.Student, error) {
	var student models.Student
	if err := c.put(ctx, "/students/"+id, req, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent removes a student. Irreversible.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.delete(ctx, "/students/"+id)
}
