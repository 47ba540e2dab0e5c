package output_test

import (
	"bytes"
	"testing"

	"taskpad/internal/output"
	"taskpad/internal/service"
	"taskpad/internal/testutil"
)

func TestFormatTask(t *testing.T) {
	cases := []struct {
		name string
		task service.Task
	}{
		{"open", service.Task{ID: 1, Title: "Buy milk"}},
		{"completed", service.Task{ID: 12, Title: "Call dentist", IsCompleted: true}},
		{"with_description", service.Task{ID: 3, Title: "Pack", Description: "passport, charger"}},
		{"untitled", service.Task{ID: 4, Title: "   "}},
		{"multiline", service.Task{ID: 5, Title: "Plan\ntrip", Description: "day one\nday two"}},
		{"wide_id", service.Task{ID: 98765, Title: "Old import"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			output.FormatTask(&buf, tc.task)
			testutil.GoldenString(t, "task_"+tc.name, buf.String())
		})
	}
}
