package api

// Report maps project names to instance names. Projects keep the order they
// were first added in, and instances keep the order they were appended in.
type Report struct {
	order     []string
	instances map[string][]string
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{instances: make(map[string][]string)}
}

// Add appends instance under project, creating the project entry if needed.
func (r *Report) Add(project, instance string) {
	if _, ok := r.instances[project]; !ok {
		r.order = append(r.order, project)
		r.instances[project] = []string{}
	}
	r.instances[project] = append(r.instances[project], instance)
}

// Projects returns project names in first-insertion order.
func (r *Report) Projects() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Instances returns the instance names recorded for project.
func (r *Report) Instances(project string) []string {
	names := r.instances[project]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Len returns the number of projects in the report.
func (r *Report) Len() int {
	return len(r.order)
}

// Map returns a copy of the report as a plain map. Ordering of keys is lost.
func (r *Report) Map() map[string][]string {
	out := make(map[string][]string, len(r.order))
	for _, project := range r.order {
		out[project] = r.Instances(project)
	}
	return out
}
