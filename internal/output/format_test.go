package output_test

import (
	"bytes"
	"testing"

	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/testutil"
)

func TestFormatTasks_All(t *testing.T) {
	s := testutil.NewSeededStore(t)

	var buf bytes.Buffer
	if !output.FormatTasks(&buf, s.Tasks(), s.Tasks()) {
		t.Fatal("expected output for seeded store")
	}
	testutil.GoldenString(t, "seeded_all", buf.String())
}

func TestFormatTasks_KeepsFullListNumbers(t *testing.T) {
	s := testutil.NewSeededStore(t)

	var buf bytes.Buffer
	output.FormatTasks(&buf, s.Tasks(), s.Filter(service.FilterActive))
	testutil.GoldenString(t, "seeded_active", buf.String())
}

func TestFormatTasks_Empty(t *testing.T) {
	s := testutil.NewSeededStore(t)

	var buf bytes.Buffer
	if output.FormatTasks(&buf, s.Tasks(), s.Filter(service.Filter("urgent"))) {
		t.Error("expected nothing written")
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}

func TestFormatTask_Newlines(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 12, service.Task{
		Text:        "line one\nline two",
		Priority:    service.PriorityLow,
		Completed:   true,
		CreatedDate: "1/2/2026",
	})

	expected := "  12  [x] low     line one line two  (added 1/2/2026)\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatStats(t *testing.T) {
	s := testutil.NewSeededStore(t)

	var buf bytes.Buffer
	output.FormatStats(&buf, s.Stats())

	expected := "total: 4  completed: 1  high priority: 1  pending: 3\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestNumber_SkipsUnknownTasks(t *testing.T) {
	s := testutil.NewSeededStore(t)
	stray := service.Task{ID: "stray", Text: "not in the list"}

	rows := output.Number(s.Tasks(), append(s.Filter(service.FilterCompleted), stray))

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Num != 2 || rows[0].Task.Text != "Buy groceries" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}
