package importer

import (
	"testing"
	"time"
)

func TestGetCalendarTime(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	t.Run("utc suffix", func(t *testing.T) {
		out, ok := GetCalendarTime("20230101T100000Z", moscow)
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		want := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
		if !out.Equal(want) {
			t.Errorf("expected %v, got %v", want, out)
		}
	})

	t.Run("zoned", func(t *testing.T) {
		out, ok := GetCalendarTime("20230101T100000", moscow)
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		want := time.Date(2023, 1, 1, 10, 0, 0, 0, moscow)
		if !out.Equal(want) {
			t.Errorf("expected %v, got %v", want, out)
		}
		// Moscow is UTC+3 year round.
		if got := out.UTC().Hour(); got != 7 {
			t.Errorf("expected 07h UTC, got %dh", got)
		}
	})

	t.Run("date only", func(t *testing.T) {
		out, ok := GetCalendarTime("20230101", moscow)
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		want := time.Date(2023, 1, 1, 0, 0, 0, 0, moscow)
		if !out.Equal(want) {
			t.Errorf("expected %v, got %v", want, out)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, ok := GetCalendarTime("not-a-time", moscow); ok {
			t.Error("expected parse to fail")
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, ok := GetCalendarTime("", moscow); ok {
			t.Error("expected parse to fail")
		}
	})
}

func TestTaskGetDue(t *testing.T) {
	task := Task{Summary: "Buy milk", DueStr: "20230101T100000Z"}
	due, ok := task.GetDue(time.UTC)
	if !ok {
		t.Fatal("expected due date")
	}
	if due.Hour() != 10 {
		t.Errorf("expected 10h, got %dh", due.Hour())
	}

	if _, ok := (Task{Summary: "Pay rent"}).GetDue(time.UTC); ok {
		t.Error("expected no due date for task without DUE")
	}
}
