package api

import (
	"context"

	"github.com/gophercloud/gophercloud/v2"

	"openstack-instance-explorer/pkg/models"
)

// Client bundles the service clients of one authenticated session.
type Client struct {
	Compute  *gophercloud.ServiceClient
	Identity *gophercloud.ServiceClient
}

// ListServers lists the instances on host across all projects.
func (c *Client) ListServers(ctx context.Context, host string) ([]models.Instance, error) {
	return ListInstances(ctx, host, c.Compute)
}

// GetProject resolves a project ID, returning nil when the project does not exist.
func (c *Client) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	return GetProject(ctx, projectID, c.Identity)
}
