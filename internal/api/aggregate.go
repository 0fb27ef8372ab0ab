package api

import (
	"context"

	"go.uber.org/zap"

	"openstack-instance-explorer/pkg/models"
)

// Source is the read-only slice of the control plane the aggregator needs.
type Source interface {
	ListServers(ctx context.Context, host string) ([]models.Instance, error)
	GetProject(ctx context.Context, projectID string) (*models.Project, error)
}

// Aggregator groups the instances running on a set of hosts by project name.
type Aggregator struct {
	source Source
	logger *zap.Logger
}

// NewAggregator returns an Aggregator reading from source. A nil logger discards output.
func NewAggregator(source Source, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{source: source, logger: logger}
}

// Aggregate visits hosts in order and records each instance under the name of
// its owning project. Instances whose project cannot be resolved are left out.
// Any listing or lookup error aborts the run and no report is returned.
func (a *Aggregator) Aggregate(ctx context.Context, hosts []string) (*Report, error) {
	report := NewReport()

	for _, host := range hosts {
		instances, err := a.source.ListServers(ctx, host)
		if err != nil {
			return nil, err
		}

		a.logger.Debug("Listed instances on host",
			zap.String("host", host),
			zap.Int("count", len(instances)))

		for _, instance := range instances {
			project, err := a.source.GetProject(ctx, instance.ProjectID)
			if err != nil {
				return nil, err
			}

			if project == nil || project.Name == "" {
				// Skipped instances never reach the report.
				a.logger.Debug("Skipping instance with unresolved project",
					zap.String("host", host),
					zap.String("instance", instance.Name),
					zap.String("project_id", instance.ProjectID))
				continue
			}

			report.Add(project.Name, instance.Name)
		}
	}

	return report, nil
}
