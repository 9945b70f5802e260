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

// checkinCmd logs one emotion check-in from the command line, useful for
// kiosk setups and smoke testing the risk pipeline.
var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Log an emotion check-in for a worker",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *wellbeing.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		workerID, _ := cmd.Flags().GetUint64("worker")
		emotionType, _ := cmd.Flags().GetString("emotion")
		intensity, _ := cmd.Flags().GetFloat64("intensity")
		notes, _ := cmd.Flags().GetString("notes")
		loggedAt, _ := cmd.Flags().GetString("logged-at")

		result, err := svc.LogEmotion(ctx, wellbeing.LogEmotionInput{
			WorkerID:    workerID,
			EmotionType: emotionType,
			Intensity:   intensity,
			Notes:       notes,
			LoggedAt:    loggedAt,
		})
		if err != nil {
			return errs.Wrap(err, "log emotion")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(),
			"check-in recorded worker=%d risk_status=%s risk_score=%.0f alert_created=%t\n",
			workerID, result.RiskStatus, result.RiskScore, result.AlertCreated,
		); err != nil {
			return errs.Wrap(err, "write checkin output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(checkinCmd)
	checkinCmd.Flags().Uint64("worker", 0, "Worker ID")
	checkinCmd.Flags().String("emotion", "", "Emotion type (positive, satisfied, neutral, tired, stressed, negative)")
	checkinCmd.Flags().Float64("intensity", 5, "Intensity 1-10")
	checkinCmd.Flags().String("notes", "", "Optional notes")
	checkinCmd.Flags().String("logged-at", "", "Backdate the entry (RFC3339, default now)")
	_ = checkinCmd.MarkFlagRequired("worker")
	_ = checkinCmd.MarkFlagRequired("emotion")
}
