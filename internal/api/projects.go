package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"

	"openstack-instance-explorer/pkg/models"
)

// GetProject looks up a project by ID. A project the identity service does not
// know about is reported as nil with no error.
func GetProject(ctx context.Context, projectID string, identityClient *gophercloud.ServiceClient) (*models.Project, error) {
	project, err := projects.Get(ctx, identityClient, projectID).Extract()
	if err != nil {
		if gophercloud.ResponseCodeIs(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, &Error{
			Kind: KindAPI,
			Op:   fmt.Sprintf("failed to get project %s", projectID),
			Err:  err,
		}
	}

	if project == nil {
		return nil, nil
	}

	return &models.Project{
		ID:   project.ID,
		Name: project.Name,
	}, nil
}
