package cmd

import (
	"fmt"
	"os"

	"github.com/highcard-dev/companion/internal/core/domain"
	"github.com/spf13/cobra"
)

var osExit = os.Exit

// replaced in tests
var exit = osExit

var SemverCmd = &cobra.Command{
	Use:   "semver [version1] [lt|gt|eq|ne|le|ge] [version2]",
	Short: "Compare two versions",
	Long:  "This command compares two versions with the same ordering the update check uses. If the comparison is true, the command will exit with a 0 exit code. If the comparison is false, the command will exit with a 1 exit code.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := compareVersions(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if !ok {
			exit(1)
		}
		return nil
	},
}

func compareVersions(a, operator, b string) (bool, error) {
	cmp, err := domain.CompareVersions(a, b)
	if err != nil {
		return false, fmt.Errorf("error parsing version: %w", err)
	}

	switch operator {
	case "eq":
		return cmp == 0, nil
	case "ne":
		return cmp != 0, nil
	case "lt":
		return cmp < 0, nil
	case "gt":
		return cmp > 0, nil
	case "le":
		return cmp <= 0, nil
	case "ge":
		return cmp >= 0, nil
	}
	return false, fmt.Errorf("invalid comparison operator: %s", operator)
}
