package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf, Description: "Exporting workflows"}

	r.Start(2)
	r.Update(1, "master_orchestrator.json")
	r.Update(2, "error_handler.json")
	r.Finish()

	want := "Exporting workflows: 2 files\n" +
		"[1/2] master_orchestrator.json\n" +
		"[2/2] error_handler.json\n" +
		"Exporting workflows: done\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("x").(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestTerminalReporterBeforeStart(t *testing.T) {
	r := &TerminalReporter{}
	// Update and Finish without Start must not panic.
	r.Update(1, "x")
	r.Finish()
}
