package auth

import (
	"context"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"

	"openstack-instance-explorer/internal/api"
)

// Connect authenticates against the identity service and returns compute and
// identity clients bound to the session.
func Connect(ctx context.Context, cfg Config) (*api.Client, error) {
	opts := gophercloud.AuthOptions{
		IdentityEndpoint: cfg.AuthURL,
		Username:         cfg.Username,
		Password:         cfg.Password,
		DomainName:       cfg.UserDomainName,
		AllowReauth:      true,
		Scope: &gophercloud.AuthScope{
			ProjectName: cfg.ProjectName,
			DomainName:  cfg.ProjectDomainName,
		},
	}

	provider, err := openstack.AuthenticatedClient(ctx, opts)
	if err != nil {
		return nil, &api.Error{Kind: api.KindAuth, Op: "failed to authenticate", Err: err}
	}

	endpointOpts := gophercloud.EndpointOpts{Region: cfg.Region}

	computeClient, err := openstack.NewComputeV2(provider, endpointOpts)
	if err != nil {
		return nil, &api.Error{Kind: api.KindAPI, Op: "failed to create compute client", Err: err}
	}

	identityClient, err := openstack.NewIdentityV3(provider, endpointOpts)
	if err != nil {
		return nil, &api.Error{Kind: api.KindAPI, Op: "failed to create identity client", Err: err}
	}

	return &api.Client{
		Compute:  computeClient,
		Identity: identityClient,
	}, nil
}
