package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"goyo/internal/bootstrap"
	"goyo/internal/bootstrap/logging"
	"goyo/internal/errs"
	"goyo/internal/usecase/wellbeing"
)

// seedCmd loads a small demo dataset for local development.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo workers and counselors",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *wellbeing.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))
		logging.Info(ctx, "start seed")

		workers := []wellbeing.CreateWorkerInput{
			{Name: "Kim Jiyoung", Role: "caregiver", Team: "day-shift"},
			{Name: "Lee Minho", Role: "caregiver", Team: "night-shift"},
			{Name: "Park Soyeon", Role: "nurse", Team: "day-shift"},
		}
		for _, input := range workers {
			if _, err := svc.CreateWorker(ctx, input); err != nil {
				return errs.Wrapf(err, "seed worker %s", input.Name)
			}
		}

		counselors := []wellbeing.CreateCounselorInput{
			{Name: "Dr. Choi Eunji", Specialties: "burnout,stress", MaxCapacity: 8},
			{Name: "Dr. Kang Woojin", Specialties: "anxiety,depression", MaxCapacity: 6},
		}
		for _, input := range counselors {
			if _, err := svc.CreateCounselor(ctx, input); err != nil {
				return errs.Wrapf(err, "seed counselor %s", input.Name)
			}
		}

		logging.Info(ctx, "seed finished",
			slog.Int("workers", len(workers)),
			slog.Int("counselors", len(counselors)),
		)
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "seeded %d workers and %d counselors\n", len(workers), len(counselors)); err != nil {
			return errs.Wrap(err, "write seed output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
