// ABOUTME: MCP tool implementations for the fitness ledger.
// ABOUTME: Each tool validates its input, calls the service and renders text.
package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/harperreed/fitness/internal/render"
	"github.com/harperreed/fitness/internal/training"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

func (s *Server) registerTools() {
	// Workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_log_workout",
		Description: "Log a workout (WOD, class, run) with an optional result",
	}, s.handleLogWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_list_workouts",
		Description: "List recent workouts with their IDs, for updating or deleting",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_update_workout",
		Description: "Update fields of an existing workout; omitted fields are unchanged",
	}, s.handleUpdateWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_delete_workout",
		Description: "Delete a workout by ID. Requires confirm=true",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_log_lift",
		Description: "Log a strength lift and detect personal records at the same rep count",
	}, s.handleLogLift)

	// Daily metrics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_log_protein",
		Description: "Set the protein total for a day, replacing any earlier value",
		Annotations: &mcp.ToolAnnotations{IdempotentHint: true},
	}, s.handleLogProtein)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_add_protein",
		Description: "Add protein to today's running total",
	}, s.handleAddProtein)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_update_protein",
		Description: "Correct the grams or notes of an existing protein entry",
	}, s.handleUpdateProtein)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_log_weight",
		Description: "Log body weight in lbs and show the change from the previous entry",
		Annotations: &mcp.ToolAnnotations{IdempotentHint: true},
	}, s.handleLogWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_log_readiness",
		Description: "Morning check-in: sleep, energy, soreness and stress (1-5) with a training recommendation",
		Annotations: &mcp.ToolAnnotations{IdempotentHint: true},
	}, s.handleLogReadiness)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_delete_readiness",
		Description: "Delete the readiness check-in for a date. Requires confirm=true",
	}, s.handleDeleteReadiness)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_log_mobility",
		Description: "Log a mobility or stretching session",
	}, s.handleLogMobility)

	// Program
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_get_today",
		Description: "Get the prescribed workout for today or a given date",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleGetToday)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_set_program",
		Description: "Activate a training program, the built-in 4-week starter by default",
	}, s.handleSetProgram)

	// Reports
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_get_lift_history",
		Description: "Get the history and current PRs for a lift",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleGetLiftHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_get_prs",
		Description: "Get the personal record board",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleGetPRs)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_weekly_review",
		Description: "Review training, protein, weight, recovery and mobility over recent weeks",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleWeeklyReview)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_get_summary",
		Description: "Get a quick dashboard of today and this week",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleGetSummary)

	// History queries default to JSON for charting.
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_get_readiness_history",
		Description: "Get readiness check-ins over a period",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleReadinessHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_get_protein_history",
		Description: "Get daily protein totals over a period",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleProteinHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_get_weight_history",
		Description: "Get body weight entries over a period",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleWeightHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_get_workout_history",
		Description: "Get workouts over a period",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleWorkoutHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_get_mobility_history",
		Description: "Get mobility sessions over a period",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.handleMobilityHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "fitness_import_workouts",
		Description: "Import a workout export CSV; rows already logged are skipped",
	}, s.handleImportWorkouts)
}

// Tool input types

type logWorkoutInput struct {
	Title       string `json:"title" jsonschema:"Workout name, e.g. Fran or 5K run"`
	Date        string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Description string `json:"description,omitempty" jsonschema:"Workout description"`
	ScoreType   string `json:"score_type,omitempty" jsonschema:"How the result is measured: time, reps, rounds, load, distance, other"`
	Result      string `json:"result,omitempty" jsonschema:"Result as displayed, e.g. 4:32 or 225"`
	Notes       string `json:"notes,omitempty" jsonschema:"Optional notes"`
	RX          *bool  `json:"rx,omitempty" jsonschema:"Done as prescribed (default true)"`
}

type listWorkoutsInput struct {
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 10, max 50)"`
	Date  string `json:"date,omitempty" jsonschema:"Only workouts on this date (YYYY-MM-DD)"`
}

type updateWorkoutInput struct {
	WorkoutID   int64   `json:"workout_id" jsonschema:"ID of the workout to update"`
	Date        *string `json:"date,omitempty" jsonschema:"New date (YYYY-MM-DD)"`
	Title       *string `json:"title,omitempty" jsonschema:"New title"`
	Description *string `json:"description,omitempty" jsonschema:"New description"`
	Result      *string `json:"result,omitempty" jsonschema:"New result"`
	Notes       *string `json:"notes,omitempty" jsonschema:"New notes"`
	RX          *bool   `json:"rx,omitempty" jsonschema:"Done as prescribed"`
}

type deleteWorkoutInput struct {
	WorkoutID int64 `json:"workout_id" jsonschema:"ID of the workout to delete"`
	Confirm   bool  `json:"confirm,omitempty" jsonschema:"Must be true to delete"`
}

type logLiftInput struct {
	LiftName string  `json:"lift_name" jsonschema:"Lift name, e.g. Back Squat"`
	Weight   float64 `json:"weight" jsonschema:"Weight in lbs"`
	Reps     *int    `json:"reps,omitempty" jsonschema:"Reps per set, at least 1 (default 1)"`
	Sets     *int    `json:"sets,omitempty" jsonschema:"Number of sets, at least 1 (default 1)"`
	Date     string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Notes    string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type logProteinInput struct {
	Grams int    `json:"grams" jsonschema:"Total protein in grams (0-500)"`
	Date  string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Notes string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type addProteinInput struct {
	Grams int    `json:"grams" jsonschema:"Grams to add (0-300)"`
	Food  string `json:"food,omitempty" jsonschema:"What you ate"`
}

type updateProteinInput struct {
	Date  string  `json:"date" jsonschema:"Date of the entry (YYYY-MM-DD)"`
	Grams *int    `json:"grams,omitempty" jsonschema:"New total in grams (0-500)"`
	Notes *string `json:"notes,omitempty" jsonschema:"New notes"`
}

type logWeightInput struct {
	Weight float64 `json:"weight" jsonschema:"Body weight in lbs"`
	Date   string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Notes  string  `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type logReadinessInput struct {
	SleepQuality int    `json:"sleep_quality" jsonschema:"Sleep quality 1-5"`
	Energy       int    `json:"energy" jsonschema:"Energy 1-5"`
	Soreness     int    `json:"soreness" jsonschema:"Soreness 1-5, higher is more sore"`
	Stress       int    `json:"stress" jsonschema:"Stress 1-5, higher is more stressed"`
	Date         string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Notes        string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type deleteReadinessInput struct {
	Date    string `json:"date" jsonschema:"Date of the check-in (YYYY-MM-DD)"`
	Confirm bool   `json:"confirm,omitempty" jsonschema:"Must be true to delete"`
}

type logMobilityInput struct {
	DurationMinutes int    `json:"duration_minutes" jsonschema:"Duration in minutes (1-120)"`
	FocusArea       string `json:"focus_area,omitempty" jsonschema:"Focus area, e.g. hips or shoulders"`
	Exercises       string `json:"exercises,omitempty" jsonschema:"Exercises performed"`
	Date            string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Notes           string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type getTodayInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type setProgramInput struct {
	StartDate   string `json:"start_date,omitempty" jsonschema:"Start date (YYYY-MM-DD), defaults to next Monday"`
	UseDefault  *bool  `json:"use_default,omitempty" jsonschema:"Use the built-in 4-week program (default true)"`
	ProgramFile string `json:"program_file,omitempty" jsonschema:"Path to a YAML program definition, used when use_default is false"`
}

type liftHistoryInput struct {
	LiftName       string `json:"lift_name" jsonschema:"Lift name or part of it"`
	Limit          int    `json:"limit,omitempty" jsonschema:"Max workouts (default 20, max 100)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"markdown (default) or json"`
}

type getPRsInput struct {
	LiftName       string `json:"lift_name,omitempty" jsonschema:"Only lifts whose name contains this"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"markdown (default) or json"`
}

type weeklyReviewInput struct {
	WeeksBack      int    `json:"weeks_back,omitempty" jsonschema:"Weeks to review (default 1, max 12)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"markdown (default) or json"`
}

type summaryInput struct {
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"markdown (default) or json"`
}

type historyInput struct {
	DaysBack       int    `json:"days_back,omitempty" jsonschema:"Days of history (default 30, weight 90, max 365)"`
	ResponseFormat string `json:"response_format,omitempty" jsonschema:"json (default) or markdown"`
}

type importInput struct {
	FilePath string `json:"file_path" jsonschema:"Path to the exported CSV file"`
}

// call runs fn as one logged tool invocation. User errors are answered
// as plain text; anything else is reported as a tool error.
func (s *Server) call(tool string, fn func() (string, error)) (*mcp.CallToolResult, any, error) {
	log := s.log.WithFields(logrus.Fields{"tool": tool, "op_id": uuid.NewString()})
	log.Debug("tool call")

	text, err := fn()
	switch {
	case err == nil:
		return textResult(text, false), nil, nil
	case training.IsUserError(err):
		log.WithError(err).Info("tool input rejected")
		return textResult(render.Error(err), false), nil, nil
	default:
		log.WithError(err).Error("tool failed")
		return textResult(render.Error(err), true), nil, nil
	}
}

func textResult(text string, isErr bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isErr,
	}
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, in logWorkoutInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_log_workout", func() (string, error) {
		w, err := s.svc.LogWorkout(ctx, training.WorkoutInput{
			Title:       in.Title,
			Date:        in.Date,
			Description: in.Description,
			ScoreType:   in.ScoreType,
			Result:      in.Result,
			Notes:       in.Notes,
			RX:          in.RX,
		})
		if err != nil {
			return "", err
		}
		return render.WorkoutLogged(w), nil
	})
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, in listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_list_workouts", func() (string, error) {
		ws, err := s.svc.ListWorkouts(ctx, training.ListWorkoutsInput{Date: in.Date, Limit: in.Limit})
		if err != nil {
			return "", err
		}
		return render.WorkoutList(ws), nil
	})
}

func (s *Server) handleUpdateWorkout(ctx context.Context, req *mcp.CallToolRequest, in updateWorkoutInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_update_workout", func() (string, error) {
		w, err := s.svc.UpdateWorkout(ctx, training.WorkoutUpdate{
			ID:          in.WorkoutID,
			Date:        in.Date,
			Title:       in.Title,
			Description: in.Description,
			Result:      in.Result,
			Notes:       in.Notes,
			RX:          in.RX,
		})
		if err != nil {
			return "", err
		}
		return render.WorkoutUpdated(w), nil
	})
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, in deleteWorkoutInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_delete_workout", func() (string, error) {
		w, err := s.svc.DeleteWorkout(ctx, in.WorkoutID, in.Confirm)
		if err != nil {
			return "", err
		}
		return render.WorkoutDeleted(w), nil
	})
}

func (s *Server) handleLogLift(ctx context.Context, req *mcp.CallToolRequest, in logLiftInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_log_lift", func() (string, error) {
		res, err := s.svc.RecordLift(ctx, training.LiftInput{
			Lift:   in.LiftName,
			Weight: in.Weight,
			Reps:   in.Reps,
			Sets:   in.Sets,
			Date:   in.Date,
			Notes:  in.Notes,
		})
		if err != nil {
			return "", err
		}
		return render.Lift(res), nil
	})
}

func (s *Server) handleLogProtein(ctx context.Context, req *mcp.CallToolRequest, in logProteinInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_log_protein", func() (string, error) {
		res, err := s.svc.LogProtein(ctx, training.ProteinInput{Date: in.Date, Grams: in.Grams, Notes: in.Notes})
		if err != nil {
			return "", err
		}
		return render.ProteinLogged(res), nil
	})
}

func (s *Server) handleAddProtein(ctx context.Context, req *mcp.CallToolRequest, in addProteinInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_add_protein", func() (string, error) {
		res, err := s.svc.AddProtein(ctx, in.Grams, in.Food)
		if err != nil {
			return "", err
		}
		return render.ProteinAdded(res), nil
	})
}

func (s *Server) handleUpdateProtein(ctx context.Context, req *mcp.CallToolRequest, in updateProteinInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_update_protein", func() (string, error) {
		res, err := s.svc.UpdateProtein(ctx, training.UpdateProteinInput{Date: in.Date, Grams: in.Grams, Notes: in.Notes})
		if err != nil {
			return "", err
		}
		return render.ProteinUpdated(res), nil
	})
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, in logWeightInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_log_weight", func() (string, error) {
		res, err := s.svc.LogWeight(ctx, training.WeightInput{Date: in.Date, Weight: in.Weight, Notes: in.Notes})
		if err != nil {
			return "", err
		}
		return render.Weight(res), nil
	})
}

func (s *Server) handleLogReadiness(ctx context.Context, req *mcp.CallToolRequest, in logReadinessInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_log_readiness", func() (string, error) {
		res, err := s.svc.LogReadiness(ctx, training.ReadinessInput{
			Date:         in.Date,
			SleepQuality: in.SleepQuality,
			Energy:       in.Energy,
			Soreness:     in.Soreness,
			Stress:       in.Stress,
			Notes:        in.Notes,
		})
		if err != nil {
			return "", err
		}
		return render.Readiness(res), nil
	})
}

func (s *Server) handleDeleteReadiness(ctx context.Context, req *mcp.CallToolRequest, in deleteReadinessInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_delete_readiness", func() (string, error) {
		date, err := s.svc.DeleteReadiness(ctx, in.Date, in.Confirm)
		if err != nil {
			return "", err
		}
		return render.ReadinessDeleted(date), nil
	})
}

func (s *Server) handleLogMobility(ctx context.Context, req *mcp.CallToolRequest, in logMobilityInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_log_mobility", func() (string, error) {
		res, err := s.svc.LogMobility(ctx, training.MobilityInput{
			Date:      in.Date,
			Minutes:   in.DurationMinutes,
			FocusArea: in.FocusArea,
			Exercises: in.Exercises,
			Notes:     in.Notes,
		})
		if err != nil {
			return "", err
		}
		return render.Mobility(res), nil
	})
}

func (s *Server) handleGetToday(ctx context.Context, req *mcp.CallToolRequest, in getTodayInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_get_today", func() (string, error) {
		p, err := s.svc.GetToday(ctx, in.Date)
		if err != nil {
			return "", err
		}
		return render.Today(p), nil
	})
}

func (s *Server) handleSetProgram(ctx context.Context, req *mcp.CallToolRequest, in setProgramInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_set_program", func() (string, error) {
		useDefault := in.ProgramFile == ""
		if in.UseDefault != nil {
			useDefault = *in.UseDefault
		}
		prog, err := s.svc.SetProgram(ctx, training.SetProgramInput{
			StartDate:   in.StartDate,
			UseDefault:  useDefault,
			ProgramFile: in.ProgramFile,
		})
		if err != nil {
			return "", err
		}
		return render.ProgramActivated(prog), nil
	})
}

func (s *Server) handleGetLiftHistory(ctx context.Context, req *mcp.CallToolRequest, in liftHistoryInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_get_lift_history", func() (string, error) {
		f, err := render.ParseFormat(in.ResponseFormat, render.Markdown)
		if err != nil {
			return "", err
		}
		h, err := s.svc.GetLiftHistory(ctx, in.LiftName, in.Limit)
		if err != nil {
			return "", err
		}
		return render.LiftHistory(h, f)
	})
}

func (s *Server) handleGetPRs(ctx context.Context, req *mcp.CallToolRequest, in getPRsInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_get_prs", func() (string, error) {
		f, err := render.ParseFormat(in.ResponseFormat, render.Markdown)
		if err != nil {
			return "", err
		}
		prs, err := s.svc.PRBoard(ctx, in.LiftName)
		if err != nil {
			return "", err
		}
		return render.PRBoard(prs, f)
	})
}

func (s *Server) handleWeeklyReview(ctx context.Context, req *mcp.CallToolRequest, in weeklyReviewInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_weekly_review", func() (string, error) {
		f, err := render.ParseFormat(in.ResponseFormat, render.Markdown)
		if err != nil {
			return "", err
		}
		r, err := s.svc.WeeklyReview(ctx, in.WeeksBack)
		if err != nil {
			return "", err
		}
		return render.WeeklyReview(r, f)
	})
}

func (s *Server) handleGetSummary(ctx context.Context, req *mcp.CallToolRequest, in summaryInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_get_summary", func() (string, error) {
		f, err := render.ParseFormat(in.ResponseFormat, render.Markdown)
		if err != nil {
			return "", err
		}
		sum, err := s.svc.Summary(ctx)
		if err != nil {
			return "", err
		}
		return render.Summary(sum, f)
	})
}

func (s *Server) handleReadinessHistory(ctx context.Context, req *mcp.CallToolRequest, in historyInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_get_readiness_history", func() (string, error) {
		f, err := render.ParseFormat(in.ResponseFormat, render.JSON)
		if err != nil {
			return "", err
		}
		rows, err := s.svc.ReadinessHistory(ctx, in.DaysBack)
		if err != nil {
			return "", err
		}
		return render.ReadinessHistory(rows, f)
	})
}

func (s *Server) handleProteinHistory(ctx context.Context, req *mcp.CallToolRequest, in historyInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_get_protein_history", func() (string, error) {
		f, err := render.ParseFormat(in.ResponseFormat, render.JSON)
		if err != nil {
			return "", err
		}
		rows, err := s.svc.ProteinHistory(ctx, in.DaysBack)
		if err != nil {
			return "", err
		}
		return render.ProteinHistory(rows, f)
	})
}

func (s *Server) handleWeightHistory(ctx context.Context, req *mcp.CallToolRequest, in historyInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_get_weight_history", func() (string, error) {
		f, err := render.ParseFormat(in.ResponseFormat, render.JSON)
		if err != nil {
			return "", err
		}
		rows, err := s.svc.WeightHistory(ctx, in.DaysBack)
		if err != nil {
			return "", err
		}
		return render.WeightHistory(rows, f)
	})
}

func (s *Server) handleWorkoutHistory(ctx context.Context, req *mcp.CallToolRequest, in historyInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_get_workout_history", func() (string, error) {
		f, err := render.ParseFormat(in.ResponseFormat, render.JSON)
		if err != nil {
			return "", err
		}
		rows, err := s.svc.WorkoutHistory(ctx, in.DaysBack)
		if err != nil {
			return "", err
		}
		return render.WorkoutHistory(rows, f)
	})
}

func (s *Server) handleMobilityHistory(ctx context.Context, req *mcp.CallToolRequest, in historyInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_get_mobility_history", func() (string, error) {
		f, err := render.ParseFormat(in.ResponseFormat, render.JSON)
		if err != nil {
			return "", err
		}
		rows, err := s.svc.MobilityHistory(ctx, in.DaysBack)
		if err != nil {
			return "", err
		}
		return render.MobilityHistory(rows, f)
	})
}

func (s *Server) handleImportWorkouts(ctx context.Context, req *mcp.CallToolRequest, in importInput) (*mcp.CallToolResult, any, error) {
	return s.call("fitness_import_workouts", func() (string, error) {
		sum, err := s.svc.ImportFile(ctx, in.FilePath)
		if err != nil {
			return "", err
		}
		return render.Import(sum), nil
	})
}
