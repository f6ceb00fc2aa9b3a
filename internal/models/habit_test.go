package models

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestParseHabitStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    HabitStatus
		wantErr bool
	}{
		{input: "NEW", want: StatusNew},
		{input: "new", want: StatusNew},
		{input: "in_progress", want: StatusInProgress},
		{input: "in-progress", want: StatusInProgress},
		{input: " In Progress ", want: StatusInProgress},
		{input: "Finished", want: StatusFinished},
		{input: "done", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHabitStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseHabitStatus(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHabitStatus(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHabitStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHabitStatusOrder(t *testing.T) {
	statuses := []HabitStatus{StatusFinished, StatusNew, StatusInProgress}
	slices.SortFunc(statuses, HabitStatus.Compare)

	if !slices.Equal(statuses, Statuses()) {
		t.Errorf("sorted statuses = %v, want %v", statuses, Statuses())
	}
	if StatusNew.Compare(StatusFinished) >= 0 {
		t.Error("NEW should sort before FINISHED")
	}
}

func TestHabitStatusString(t *testing.T) {
	if got := StatusInProgress.String(); got != "IN_PROGRESS" {
		t.Errorf("String() = %q, want IN_PROGRESS", got)
	}
	if got := HabitStatus(7).String(); got != "HabitStatus(7)" {
		t.Errorf("String() for invalid status = %q", got)
	}
}

func TestHabitJSONUsesStatusName(t *testing.T) {
	data, err := json.Marshal(Habit{ID: 3, Name: "Read", Status: StatusFinished})
	if err != nil {
		t.Fatalf("failed to marshal habit: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to unmarshal habit: %v", err)
	}
	if raw["status"] != "FINISHED" {
		t.Errorf("expected status FINISHED in JSON, got %v", raw["status"])
	}

	var decoded Habit
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode habit: %v", err)
	}
	if decoded.Status != StatusFinished {
		t.Errorf("decoded status = %v, want FINISHED", decoded.Status)
	}
}

func TestNewUserAssignsDistinctIDs(t *testing.T) {
	a := NewUser("alice")
	b := NewUser("alice")

	if a.ID == b.ID {
		t.Error("expected distinct user IDs")
	}
	if a == b {
		t.Error("users with different IDs must not be equal")
	}
}
