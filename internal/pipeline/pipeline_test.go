package pipeline

import (
	"context"
	"errors"
	"testing"

	"hostpms-connector/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.NewLogger("error")
}

func TestRequiredStepFailureStopsPipeline(t *testing.T) {
	t.Parallel()
	executed := []string{}

	steps := []Step{
		NewStep("A", true, func(ctx context.Context, run *Context) error {
			executed = append(executed, "A")
			return errors.New("boom")
		}),
		NewStep("B", false, func(ctx context.Context, run *Context) error {
			executed = append(executed, "B")
			return nil
		}),
	}

	run := New("test", steps, testLogger()).Execute(context.Background(), NewContext("HTL1"))

	if len(executed) != 1 || executed[0] != "A" {
		t.Fatalf("expected only A to run, got %v", executed)
	}
	if run.Success {
		t.Fatal("expected run to be marked failed")
	}
	if len(run.Errors) != 1 || run.Errors[0].Step != "A" {
		t.Fatalf("expected exactly one error for step A, got %v", run.Errors)
	}
}

func TestOptionalStepFailureContinuesPipeline(t *testing.T) {
	t.Parallel()
	executed := []string{}

	steps := []Step{
		NewStep("A", false, func(ctx context.Context, run *Context) error {
			executed = append(executed, "A")
			return errors.New("boom")
		}),
		NewStep("B", true, func(ctx context.Context, run *Context) error {
			executed = append(executed, "B")
			return nil
		}),
	}

	run := New("test", steps, testLogger()).Execute(context.Background(), NewContext("HTL1"))

	if len(executed) != 2 {
		t.Fatalf("expected both steps to run, got %v", executed)
	}
	if run.Success {
		t.Fatal("expected overall failure because A recorded an error")
	}

	stats, ok := run.Stats["pipeline"].(map[string]interface{})
	if !ok {
		t.Fatal("expected pipeline stats to be attached")
	}
	if stats["successfulSteps"] != 1 || stats["failedSteps"] != 1 {
		t.Fatalf("unexpected step counts: %v", stats)
	}
}

func TestPanicInsideStepIsRecordedAsError(t *testing.T) {
	t.Parallel()
	steps := []Step{
		NewStep("A", false, func(ctx context.Context, run *Context) error {
			panic("unhandled fault")
		}),
		NewStep("B", false, func(ctx context.Context, run *Context) error {
			return nil
		}),
	}

	run := New("test", steps, testLogger()).Execute(context.Background(), NewContext("HTL1"))

	if len(run.Errors) != 1 || run.Errors[0].Step != "A" {
		t.Fatalf("expected panic to be recorded against A, got %v", run.Errors)
	}
	if run.Success {
		t.Fatal("expected run to be marked failed")
	}
}

func TestFullyGreenRunIsSuccessful(t *testing.T) {
	t.Parallel()
	steps := []Step{
		NewStep("A", true, func(ctx context.Context, run *Context) error { return nil }),
		NewStep("B", false, func(ctx context.Context, run *Context) error { return nil }),
	}

	run := New("test", steps, testLogger()).Execute(context.Background(), NewContext("HTL1"))

	if !run.Success {
		t.Fatalf("expected success, errors: %v", run.Errors)
	}
	result := run.Result()
	if result.HotelCode != "HTL1" || !result.Success {
		t.Fatalf("unexpected run result: %+v", result)
	}
}

func TestStepNamesPreserveDeclarationOrder(t *testing.T) {
	t.Parallel()
	steps := []Step{
		NewStep("fetch", true, func(ctx context.Context, run *Context) error { return nil }),
		NewStep("transform", false, func(ctx context.Context, run *Context) error { return nil }),
		NewStep("publish", false, func(ctx context.Context, run *Context) error { return nil }),
	}

	names := New("test", steps, testLogger()).StepNames()

	want := []string{"fetch", "transform", "publish"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestContextAccumulators(t *testing.T) {
	t.Parallel()
	run := NewContext("HTL9")
	run.AddNotification("reservations", "HTL9/reservations-1.json")
	run.AddError("X", "failed")

	if len(run.Notifications) != 1 || run.Notifications[0].HotelCode != "HTL9" {
		t.Fatalf("unexpected notifications: %v", run.Notifications)
	}
	if !run.HasErrors() {
		t.Fatal("expected HasErrors to be true")
	}
	if run.Errors[0].Timestamp.IsZero() {
		t.Fatal("expected error timestamp to be set")
	}
}
