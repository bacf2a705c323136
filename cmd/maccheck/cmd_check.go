package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vertti/maccheck/pkg/exec"
	"github.com/vertti/maccheck/pkg/host"
	"github.com/vertti/maccheck/pkg/maccheck"
)

var (
	checkAll        bool
	overrideVersion string
	overrideModel   string
	outputFormat    = formatText

	// executor is replaced in tests.
	executor exec.Executor = &exec.RealExecutor{}
)

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&checkAll, "all", false, "report every failure instead of stopping at the first")
	flags.StringVar(&overrideVersion, "os-version", "", "evaluate this macOS version instead of the host's")
	flags.StringVar(&overrideModel, "model", "", "evaluate this hardware model instead of the host's")
	flags.VarP(newFormatFlag(&outputFormat), "output", "o", "output format: text or json")
}

func runMacCheck(cmd *cobra.Command, args []string) error {
	execArgs, err := commandAfterDash(cmd, args)
	if err != nil {
		return err
	}

	var info host.Info = &host.RealInfo{}
	if overrideVersion != "" || overrideModel != "" {
		info = host.Overlay{
			Base:   info,
			Static: host.Static{Version: overrideVersion, HardwareModel: overrideModel},
		}
	}

	c := &maccheck.Check{Info: info, All: checkAll}
	if err := runCheck(cmd.OutOrStdout(), c, outputFormat); err != nil {
		return err
	}

	if len(execArgs) == 0 {
		return nil
	}
	logrus.WithField("command", execArgs[0]).Debugln("check passed, exec")
	if err := executor.Exec(execArgs[0], execArgs[1:]); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}

// commandAfterDash returns the command given after "--", if any.
func commandAfterDash(cmd *cobra.Command, args []string) ([]string, error) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		if len(args) > 0 {
			return nil, fmt.Errorf("unexpected arguments %q; put the command to run after --", args)
		}
		return nil, nil
	}
	if dash > 0 {
		return nil, fmt.Errorf("unexpected arguments %q before --", args[:dash])
	}
	return args, nil
}
