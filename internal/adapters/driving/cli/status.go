package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show persisted table counts",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if statusReporter == nil {
		return errors.New("status service not configured")
	}

	counts, err := statusReporter.Counts(context.Background())
	if err != nil {
		return fmt.Errorf("status failed: %w", err)
	}

	cmd.Printf("employees:            %d\n", counts.Employees)
	cmd.Printf("experiences:          %d\n", counts.Experiences)
	cmd.Printf("educations:           %d\n", counts.Educations)
	cmd.Printf("employee-experiences: %d\n", counts.EmployeeExperiences)
	cmd.Printf("employee-educations:  %d\n", counts.EmployeeEducations)
	return nil
}
