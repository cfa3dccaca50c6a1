package spacedrep

import (
	"testing"
	"time"
)

func TestDueUnits_SortsMostOverdueFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	check := base.AddDate(0, 0, 10)

	items := map[string]*ReviewItem{
		"fresh":   {UnitID: "fresh", DueDate: check.AddDate(0, 0, 3)},
		"overdue": {UnitID: "overdue", DueDate: base},
		"barely":  {UnitID: "barely", DueDate: check},
	}

	got := DueUnits(items, check)
	want := []string{"overdue", "barely"}
	if len(got) != len(want) {
		t.Fatalf("DueUnits = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DueUnits = %v, want %v", got, want)
		}
	}
}

func TestDueUnits_TiesBreakByID(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	items := map[string]*ReviewItem{
		"b": {UnitID: "b", DueDate: due},
		"a": {UnitID: "a", DueDate: due},
		"c": {UnitID: "c", DueDate: due},
	}

	got := DueUnits(items, due)
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DueUnits = %v, want %v", got, want)
		}
	}
}

func TestQualityFromScore(t *testing.T) {
	tests := []struct {
		pct  float64
		want Quality
	}{
		{100, QualityPerfect},
		{95, QualityGood},
		{85, QualityDifficult},
		{70, QualityHard},
		{50, QualityWrong},
		{30, QualityBlackout},
	}

	for _, tt := range tests {
		if got := QualityFromScore(tt.pct); got != tt.want {
			t.Errorf("QualityFromScore(%f) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func TestQualityPassed(t *testing.T) {
	for q := QualityBlackout; q <= QualityPerfect; q++ {
		want := q >= QualityDifficult
		if q.Passed() != want {
			t.Errorf("Quality(%d).Passed() = %v, want %v", q, q.Passed(), want)
		}
	}
}
