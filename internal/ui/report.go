package ui

import (
	"fmt"
	"io"
	"os"

	"openstack-instance-explorer/internal/api"
)

// DisplayReport prints each project followed by its instances, in the order
// they were recorded, with a blank line after every project.
func DisplayReport(report *api.Report, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	for _, project := range report.Projects() {
		fmt.Fprintf(w, "Instances for project %s:\n", project)
		for _, instance := range report.Instances(project) {
			fmt.Fprintf(w, "  - %s\n", instance)
		}
		fmt.Fprintln(w)
	}
}

// PrintUsage writes the one-line usage message for program.
func PrintUsage(program string, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "Usage: %s <host1> [<host2> ...]\n", program)
}
