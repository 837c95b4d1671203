package sanctuary

import "testing"

func TestAchieved(t *testing.T) {
	tests := []struct {
		stars  int
		want   string
		wantOK bool
	}{
		{0, "", false},
		{4, "", false},
		{5, "hope", true},
		{6, "hope", true},
		{7, "peace", true},
		{9, "peace", true},
		{10, "growth", true},
		{12, "growth", true},
		{14, "growth", true},
		{15, "joy", true},
		{100, "joy", true},
	}
	for _, tt := range tests {
		m, ok := Achieved(tt.stars)
		if ok != tt.wantOK || m.Name != tt.want {
			t.Errorf("Achieved(%d) = %q, %v; want %q, %v", tt.stars, m.Name, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNextMilestone(t *testing.T) {
	m, ok := NextMilestone(0)
	if !ok || m.Name != "hope" {
		t.Errorf("NextMilestone(0) = %q, %v", m.Name, ok)
	}
	m, ok = NextMilestone(12)
	if !ok || m.Name != "joy" || m.RequiredStars != 15 {
		t.Errorf("NextMilestone(12) = %+v, %v", m, ok)
	}
	if _, ok := NextMilestone(15); ok {
		t.Error("NextMilestone(15) should report none left")
	}
}

func TestMilestonesTable(t *testing.T) {
	ms := Milestones()
	want := []struct {
		name  string
		stars int
	}{{"hope", 5}, {"peace", 7}, {"growth", 10}, {"joy", 15}}
	if len(ms) != len(want) {
		t.Fatalf("len = %d, want %d", len(ms), len(want))
	}
	for i, w := range want {
		if ms[i].Name != w.name || ms[i].RequiredStars != w.stars {
			t.Errorf("milestone %d = %+v, want %s/%d", i, ms[i], w.name, w.stars)
		}
		if ms[i].Emoji == "" {
			t.Errorf("milestone %s has no emoji", ms[i].Name)
		}
	}

	// Returned slice is a copy.
	ms[0].Name = "changed"
	if Milestones()[0].Name != "hope" {
		t.Error("Milestones exposed internal table")
	}
}
