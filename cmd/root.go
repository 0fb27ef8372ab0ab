package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"openstack-instance-explorer/internal/api"
	"openstack-instance-explorer/internal/ui"
)

// connectFunc opens a session to the control plane.
type connectFunc func(ctx context.Context) (api.Source, error)

var errUsage = errors.New("at least one host is required")

// Exit codes per failure kind.
const (
	exitUsage  = 1
	exitConfig = 2
	exitAuth   = 3
	exitAPI    = 4
)

// newRootCommand builds the single command of the tool. Flag parsing is
// disabled so every argument is taken as a host name.
func newRootCommand(logger *zap.Logger, connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:                "openstack-instance-explorer <host1> [<host2> ...]",
		Short:              "List instances on OpenStack compute hosts grouped by project",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			hosts := args
			if len(hosts) > 0 && hosts[0] == argsTerminator {
				hosts = hosts[1:]
			}
			if len(hosts) == 0 {
				return errUsage
			}

			ctx := cmd.Context()

			source, err := connect(ctx)
			if err != nil {
				return err
			}

			report, err := api.NewAggregator(source, logger).Aggregate(ctx, hosts)
			if err != nil {
				return err
			}

			ui.DisplayReport(report, cmd.OutOrStdout())
			return nil
		},
	}
}

// argsTerminator ends cobra's subcommand lookup, so a host named like one of
// cobra's hidden commands (__complete) still reaches RunE.
const argsTerminator = "--"

// runRoot executes cmd with args as the host list.
func runRoot(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.SetArgs(append([]string{argsTerminator}, args...))
	return cmd.ExecuteContext(ctx)
}

// exitCode reports err to the user and returns the process exit status.
func exitCode(err error, program string, stdout, stderr io.Writer) int {
	if errors.Is(err, errUsage) {
		ui.PrintUsage(program, stdout)
		return exitUsage
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)

	switch api.KindOf(err) {
	case api.KindConfig:
		return exitConfig
	case api.KindAuth:
		return exitAuth
	case api.KindAPI:
		return exitAPI
	default:
		return 1
	}
}
