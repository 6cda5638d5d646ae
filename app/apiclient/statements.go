package apiclient

import (
	"context"

	"github.com/angdmz/mattilda/app/models"
)

// StudentStatement fetches the backend-computed statement for one student.
// A missing student surfaces as a 404 APIError (IsNotFound).
func (c *Client) StudentStatement(ctx context.Context, studentID string) (*models.StudentAccountStatement, error) {
	var statement models.StudentAccountStatement
	if err := c.get(ctx, "/account-statements/students/"+studentID, nil, &statement); err != nil {
		return nil, err
	}
	return &statement, nil
}

// SchoolStatement fetches the backend-computed statement for one school.
func (c *Client) SchoolStatement(ctx context.Context, schoolID string) (*models.SchoolAccountStatement, error) {
	var statement models.SchoolAccountStatement
	if err := c.get(ctx, "/account-statements/schools/"+schoolID, nil, &statement); err != nil {
		return nil, err
	}
	return &statement, nil
}
