package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/classboard/internal/board"
	"github.com/mmynk/classboard/internal/models"
)

func TestBoardActivityIsCounted(t *testing.T) {
	m := New(nil)
	b := board.New(models.AppState{}, board.Options{Recorder: m, Confirmer: board.Never})
	ctx := context.Background()

	p, err := b.AddPerson(ctx, "Ava", models.GenderFemale, nil)
	if err != nil {
		t.Fatalf("AddPerson: %v", err)
	}
	_, _ = b.AddPerson(ctx, "  ", models.GenderUnset, nil)
	_ = b.DeletePerson(ctx, p.ID)
	b.Undo()
	b.Redo()

	if got := testutil.ToFloat64(m.mutations.WithLabelValues("AddPerson")); got != 1 {
		t.Errorf("AddPerson mutations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.rejections.WithLabelValues("AddPerson", "blank_name")); got != 1 {
		t.Errorf("blank name rejections = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.rejections.WithLabelValues("DeletePerson", "cancelled")); got != 1 {
		t.Errorf("cancelled rejections = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.history.WithLabelValues("undo")); got != 1 {
		t.Errorf("undo = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.history.WithLabelValues("redo")); got != 1 {
		t.Errorf("redo = %v, want 1", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New(nil)
	m.Mutation("MovePerson")
	m.AnalysisDuration("report", 1500*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		`classboard_mutations_total{op="MovePerson"} 1`,
		`classboard_analysis_duration_seconds_count{kind="report"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
