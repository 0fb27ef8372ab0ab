package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gophercloud/gophercloud/v2"
	th "github.com/gophercloud/gophercloud/v2/testhelper"
	fakeclient "github.com/gophercloud/gophercloud/v2/testhelper/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openstack-instance-explorer/pkg/models"
)

// newServiceClient serves mux over a local server and returns a service client
// authenticated with the SDK's fixture token.
func newServiceClient(t *testing.T, mux *http.ServeMux) *gophercloud.ServiceClient {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &gophercloud.ServiceClient{
		ProviderClient: &gophercloud.ProviderClient{TokenID: fakeclient.TokenID},
		Endpoint:       srv.URL + "/",
	}
}

func TestListInstances(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/servers/detail", func(w http.ResponseWriter, r *http.Request) {
		th.TestMethod(t, r, http.MethodGet)
		th.TestHeader(t, r, "X-Auth-Token", fakeclient.TokenID)
		th.TestFormValues(t, r, map[string]string{
			"host":        "compute-01",
			"all_tenants": "true",
		})

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"servers": [
			{"id": "s1", "name": "vm-a", "tenant_id": "p1", "status": "ACTIVE"},
			{"id": "s2", "name": "vm-b", "tenant_id": "p2", "status": "ACTIVE"}
		]}`)
	})

	client := newServiceClient(t, mux)

	instances, err := ListInstances(context.Background(), "compute-01", client)
	require.NoError(t, err)

	assert.Equal(t, []models.Instance{
		{ID: "s1", Name: "vm-a", ProjectID: "p1", Host: "compute-01"},
		{ID: "s2", Name: "vm-b", ProjectID: "p2", Host: "compute-01"},
	}, instances)
}

func TestListInstances_Empty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/servers/detail", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"servers": []}`)
	})

	instances, err := ListInstances(context.Background(), "idle-host", newServiceClient(t, mux))
	require.NoError(t, err)
	assert.Empty(t, instances)
}

func TestListInstances_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/servers/detail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	instances, err := ListInstances(context.Background(), "compute-01", newServiceClient(t, mux))
	require.Error(t, err)

	assert.Nil(t, instances)
	assert.Equal(t, KindAPI, KindOf(err))
	assert.Contains(t, err.Error(), "compute-01")
}

func TestGetProject(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/projects/p1", func(w http.ResponseWriter, r *http.Request) {
		th.TestMethod(t, r, http.MethodGet)
		th.TestHeader(t, r, "X-Auth-Token", fakeclient.TokenID)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"project": {"id": "p1", "name": "alpha", "domain_id": "default", "enabled": true}}`)
	})

	project, err := GetProject(context.Background(), "p1", newServiceClient(t, mux))
	require.NoError(t, err)
	assert.Equal(t, &models.Project{ID: "p1", Name: "alpha"}, project)
}

func TestGetProject_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/projects/p9", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": {"code": 404, "message": "Could not find project: p9.", "title": "Not Found"}}`)
	})

	project, err := GetProject(context.Background(), "p9", newServiceClient(t, mux))
	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestGetProject_Forbidden(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/projects/p1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	project, err := GetProject(context.Background(), "p1", newServiceClient(t, mux))
	require.Error(t, err)

	assert.Nil(t, project)
	assert.Equal(t, KindAPI, KindOf(err))
	assert.True(t, gophercloud.ResponseCodeIs(err, http.StatusForbidden))
}

func TestClient_ImplementsSource(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/servers/detail", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"servers": [{"id": "s1", "name": "vm-a", "tenant_id": "p1"}]}`)
	})
	mux.HandleFunc("/projects/p1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"project": {"id": "p1", "name": "alpha"}}`)
	})

	sc := newServiceClient(t, mux)
	var src Source = &Client{Compute: sc, Identity: sc}

	report, err := NewAggregator(src, nil).Aggregate(context.Background(), []string{"h1"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"alpha": {"vm-a"}}, report.Map())
}
