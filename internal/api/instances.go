package api

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/pagination"

	"openstack-instance-explorer/pkg/models"
)

// ListInstances retrieves every server scheduled on host, across all projects.
// Pages are read eagerly and instances are returned in the order the API yields them.
func ListInstances(ctx context.Context, host string, computeClient *gophercloud.ServiceClient) ([]models.Instance, error) {
	opts := servers.ListOpts{
		Host:       host,
		AllTenants: true,
	}

	var instances []models.Instance

	err := servers.List(computeClient, opts).EachPage(ctx, func(_ context.Context, page pagination.Page) (bool, error) {
		pageServers, err := servers.ExtractServers(page)
		if err != nil {
			return false, err
		}

		for _, server := range pageServers {
			instances = append(instances, models.Instance{
				ID:        server.ID,
				Name:      server.Name,
				ProjectID: server.TenantID,
				Host:      host,
			})
		}
		return true, nil
	})
	if err != nil {
		return nil, &Error{
			Kind: KindAPI,
			Op:   fmt.Sprintf("failed to list instances on host %s", host),
			Err:  err,
		}
	}

	return instances, nil
}
