package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/2beens/workoutlog/internal/catalog"
	"github.com/2beens/workoutlog/internal/client"
	"github.com/2beens/workoutlog/internal/history"
	"github.com/2beens/workoutlog/internal/tracker"
	"github.com/2beens/workoutlog/internal/tui"
	"github.com/2beens/workoutlog/internal/workouts"
)

func (a *app) runTUI(ctx context.Context) error {
	return tui.Run(ctx, a.ctrl)
}

// printBanners writes the controller's error and info messages to stderr.
func printBanners(cmd *cobra.Command, s tracker.State) {
	if s.Err != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), s.Err)
	}
	if s.Info != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), s.Info)
	}
}

func (a *app) newListCmd() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the workout history, newest first",
		Args:  cobra.NoArgs,
		RunE: a.withController(func(cmd *cobra.Command, args []string) error {
			s := a.ctrl.FetchHistory(cmd.Context())
			printBanners(cmd, s)

			records := history.FilterByExercise(s.History, filter)
			if len(records) == 0 {
				if s.Err == "" {
					fmt.Fprintln(cmd.OutOrStdout(), history.EmptyMessage)
				}
				return nil
			}
			return writeRecords(cmd.OutOrStdout(), records, a.now().Location())
		}),
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only exercises containing this text")
	return cmd
}

func (a *app) newLogCmd() *cobra.Command {
	var (
		planKey  string
		exercise string
		weight   string
		reps     string
	)
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log an exercise performance",
		Example: `  workouts log --plan legs --exercise "Barbell Squat" --weight 225
  workouts log --plan push --exercise "barbell bench press" --weight 185 --reps 5`,
		Args: cobra.NoArgs,
		RunE: a.withController(func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParseKind(planKey)
			if err != nil {
				return err
			}
			name, err := planExercise(kind, exercise)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			// the cache mirrors the whole history, so load it first
			a.ctrl.FetchHistory(ctx)

			a.ctrl.Dispatch(tracker.SelectPlan{Plan: kind})
			a.ctrl.Dispatch(tracker.SelectExercise{Name: name})
			a.ctrl.Dispatch(tracker.WeightInput{Value: weight})
			a.ctrl.Dispatch(tracker.RepsInput{Value: reps})

			_, err = a.ctrl.LogWorkout(ctx)
			switch {
			case errors.Is(err, tracker.ErrSavedLocally):
				fmt.Fprintln(cmd.ErrOrStderr(), tracker.MsgSaveFailed)
			case err != nil:
				return err
			}

			s := a.ctrl.State()
			fmt.Fprintln(cmd.OutOrStdout(), s.Notification)
			return writeRecords(cmd.OutOrStdout(), s.History[:1], a.now().Location())
		}),
	}
	flags := cmd.Flags()
	flags.StringVarP(&planKey, "plan", "p", "", "plan: push, pull or legs")
	flags.StringVarP(&exercise, "exercise", "e", "", "exercise name from the plan")
	flags.StringVarP(&weight, "weight", "w", "", "weight in lbs")
	flags.StringVarP(&reps, "reps", "r", "", "repetitions (optional)")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("exercise")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}

// planExercise finds the exercise in the plan, ignoring case, and returns
// its catalog spelling.
func planExercise(kind catalog.Kind, exercise string) (string, error) {
	plan, ok := catalog.Lookup(kind)
	if !ok {
		return "", fmt.Errorf("unknown plan [%s]", kind)
	}
	for _, name := range plan.Exercises() {
		if strings.EqualFold(name, strings.TrimSpace(exercise)) {
			return name, nil
		}
	}
	return "", fmt.Errorf("exercise [%s] is not part of the %s plan, see 'workouts plans'", exercise, kind)
}

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a logged workout",
		Args:  cobra.ExactArgs(1),
		RunE: a.withController(func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id < 1 {
				return fmt.Errorf("invalid workout id [%s]", args[0])
			}

			ctx := cmd.Context()
			a.ctrl.FetchHistory(ctx)
			if err := a.ctrl.DeleteWorkout(ctx, id); err != nil {
				if errors.Is(err, client.ErrNotFound) {
					return fmt.Errorf("workout %d not found", id)
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.ctrl.State().Notification)
			return nil
		}),
	}
}

func (a *app) newPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "Show the workout plans and their exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writePlans(cmd.OutOrStdout())
			return nil
		},
	}
}

func (a *app) newCalendarCmd() *cobra.Command {
	var (
		month string
		day   int
	)
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of workouts",
		Args:  cobra.NoArgs,
		RunE: a.withController(func(cmd *cobra.Command, args []string) error {
			now := a.now()
			loc := now.Location()
			shown := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
			if month != "" {
				parsed, err := time.ParseInLocation("2006-01", month, loc)
				if err != nil {
					return fmt.Errorf("invalid month [%s], expected YYYY-MM", month)
				}
				shown = parsed
			}

			var selected time.Time
			if day != 0 {
				selected = time.Date(shown.Year(), shown.Month(), day, 0, 0, 0, 0, loc)
				if selected.Month() != shown.Month() {
					return fmt.Errorf("invalid day %d for %s", day, shown.Format("January 2006"))
				}
			}

			s := a.ctrl.FetchHistory(cmd.Context())
			printBanners(cmd, s)

			out := cmd.OutOrStdout()
			writeCalendar(out, s.History, shown, loc)
			if !selected.IsZero() {
				fmt.Fprintln(out)
				fmt.Fprintln(out, selected.Format("Monday, January 2, 2006"))
				onDay := history.RecordsOnDay(s.History, selected, loc)
				if len(onDay) == 0 {
					fmt.Fprintln(out, "No workouts on this day.")
					return nil
				}
				return writeRecords(out, onDay, loc)
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&month, "month", "m", "", "month as YYYY-MM, defaults to the current one")
	cmd.Flags().IntVarP(&day, "day", "d", 0, "show the workouts of this day of the month")
	return cmd
}

func writeRecords(out io.Writer, records []workouts.Record, loc *time.Location) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tEXERCISE\tPERFORMANCE")
	for _, r := range records {
		id := "-"
		if r.ID != 0 {
			id = strconv.FormatInt(r.ID, 10)
		}
		info := catalog.StyleFor(r.Workout)
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\t%s\n",
			id,
			history.FormatDate(r.Date, loc),
			info.Icon,
			info.Label,
			r.Exercise,
			history.FormatPerformance(r),
		)
	}
	return w.Flush()
}
