package models

import "testing"

func TestActivityValidate(t *testing.T) {
	cases := []struct {
		name     string
		activity Activity
		wantErr  bool
	}{
		{"valid", Activity{ID: 1, Text: "Gym", Time: "08:00"}, false},
		{"midnight", Activity{ID: 1, Text: "Sleep", Time: "00:00"}, false},
		{"end of day", Activity{ID: 1, Text: "Wind down", Time: "23:59"}, false},
		{"empty text", Activity{ID: 1, Text: "", Time: "08:00"}, true},
		{"whitespace text", Activity{ID: 1, Text: "   ", Time: "08:00"}, true},
		{"empty time", Activity{ID: 1, Text: "Gym", Time: ""}, true},
		{"no padding", Activity{ID: 1, Text: "Gym", Time: "8:00"}, true},
		{"out of range hour", Activity{ID: 1, Text: "Gym", Time: "25:00"}, true},
		{"out of range minute", Activity{ID: 1, Text: "Gym", Time: "08:61"}, true},
		{"not a time", Activity{ID: 1, Text: "Gym", Time: "8am"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.activity.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %+v", tc.activity)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %+v: %v", tc.activity, err)
			}
		})
	}
}

func TestIsDueAt(t *testing.T) {
	activity := Activity{ID: 1, Text: "Gym", Time: "08:00"}

	if !activity.IsDueAt("08:00") {
		t.Fatal("expected due at matching minute")
	}
	if activity.IsDueAt("07:59") || activity.IsDueAt("08:01") {
		t.Fatal("expected not due at other minutes")
	}

	activity.Notified = true
	if activity.IsDueAt("08:00") {
		t.Fatal("expected not due once notified")
	}
}

func TestSortActivities(t *testing.T) {
	activities := []Activity{
		{ID: 1, Text: "Lunch", Time: "12:00"},
		{ID: 2, Text: "Gym", Time: "08:00"},
		{ID: 3, Text: "Standup", Time: "09:30"},
		{ID: 4, Text: "Coffee", Time: "09:30"},
	}

	SortActivities(activities)

	want := []string{"Gym", "Standup", "Coffee", "Lunch"}
	for i, text := range want {
		if activities[i].Text != text {
			t.Fatalf("expected %q at %d, got %q", text, i, activities[i].Text)
		}
	}
	// Equal times keep insertion order.
	if activities[1].ID != 3 || activities[2].ID != 4 {
		t.Fatal("sort is not stable for equal times")
	}
}
