// ABOUTME: Tests for the CSV import adapter.
// ABOUTME: Deduplication across runs, single-rep PR extraction, and row errors.
package training

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/fitness/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `date,title,description,score_type,best_result_raw,best_result_display,barbell_lift,set_details,notes,rx_or_scaled,pr
01/02/2024,Fran,"21-15-9 thrusters, pull-ups",Time,225,3:45,,,,RX,
01/03/2024,Back Squat 1RM,Work to a heavy single,Load,315,315,Back Squat,,,RX,PR
01/05/2024,Back Squat 1RM,Work to a heavy single,Load,305,305,Back Squat,,,RX,
01/09/2024,Back Squat 1RM,Work to a heavy single,Load,325,325,Back Squat,,,RX,
01/10/2024,Cindy,AMRAP 20,Rounds + Reps,20,20 + 5,,,,Scaled,
`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestImportIsIdempotent(t *testing.T) {
	s := newTestService(t, "2024-01-31")
	ctx := context.Background()
	path := writeExport(t, sampleExport)

	first, err := s.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 5, first.Imported)
	assert.Equal(t, 0, first.Skipped)
	assert.Equal(t, 2, first.PRsAdded) // 315 then 325; 305 is lighter
	assert.Empty(t, first.Errors)
	countAfterFirst := workoutCount(t, s)

	second, err := s.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 5, second.Skipped)
	assert.Equal(t, 0, second.PRsAdded)
	assert.NotEqual(t, first.BatchID, second.BatchID)
	assert.Equal(t, countAfterFirst, workoutCount(t, s))
}

func TestImportMapsColumns(t *testing.T) {
	s := newTestService(t, "2024-01-31")
	ctx := context.Background()

	_, err := s.Import(ctx, strings.NewReader(sampleExport))
	require.NoError(t, err)

	ws, err := s.WorkoutHistory(ctx, 60)
	require.NoError(t, err)
	require.Len(t, ws, 5)

	fran := ws[0]
	assert.Equal(t, "2024-01-02", fran.Date.String())
	assert.Equal(t, models.ScoreTime, fran.ScoreKind)
	assert.Equal(t, "21-15-9 thrusters, pull-ups", fran.Description)
	assert.Equal(t, models.SourceImported, fran.Source)
	require.NotNil(t, fran.ResultRaw)
	assert.Equal(t, int64(225), *fran.ResultRaw)

	lighter := ws[2]
	assert.Equal(t, "305", lighter.ResultDisplay)
	assert.False(t, lighter.IsPR)

	heaviest := ws[3]
	assert.True(t, heaviest.IsPR, "PR rule marks the workout even without the export flag")

	cindy := ws[4]
	assert.Equal(t, models.ScoreRounds, cindy.ScoreKind)
	assert.Equal(t, models.Scaled, cindy.RX)

	board, err := s.PRBoard(ctx, "back squat")
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, 325.0, board[0].Weight)
	assert.Equal(t, 1, board[0].Reps)
}

func TestImportCollectsRowErrors(t *testing.T) {
	s := newTestService(t, "2024-01-31")
	ctx := context.Background()

	var b strings.Builder
	b.WriteString("date,title,best_result_display\n")
	b.WriteString("01/02/2024,Good Row,10\n")
	for i := 0; i < 6; i++ {
		b.WriteString("not-a-date,Bad Row,1\n")
	}
	b.WriteString("01/03/2024,,5\n")

	sum, err := s.Import(ctx, strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Imported)
	require.Len(t, sum.Errors, 7)
	assert.Contains(t, sum.Errors[0], "row 3")
	assert.Contains(t, sum.Errors[6], "missing title")
}

func TestImportRejectsUnusableFiles(t *testing.T) {
	s := newTestService(t, "2024-01-31")
	ctx := context.Background()

	_, err := s.ImportFile(ctx, filepath.Join(t.TempDir(), "nope.csv"))
	require.ErrorIs(t, err, ErrNotFound)

	var ve *ValidationError
	_, err = s.Import(ctx, strings.NewReader(""))
	assert.ErrorAs(t, err, &ve)
	_, err = s.Import(ctx, strings.NewReader("when,what\n1,2\n"))
	assert.ErrorAs(t, err, &ve)
}

func TestExportScoreKind(t *testing.T) {
	assert.Equal(t, models.ScoreLoad, exportScoreKind("Load"))
	assert.Equal(t, models.ScoreRounds, exportScoreKind("Rounds + Reps"))
	assert.Equal(t, models.ScoreOther, exportScoreKind("Other / Text"))
	assert.Equal(t, models.ScoreOther, exportScoreKind("Calories"))
	assert.Equal(t, models.ScoreKind(""), exportScoreKind(""))
}
