package xp

import "testing"

func TestXPRequiredForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 283},
		{3, 520},
		{5, 1118},
		{10, 3162},
	}

	for _, tt := range tests {
		if got := XPRequiredForLevel(tt.level); got != tt.want {
			t.Errorf("XPRequiredForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestXPRequiredForLevel_StrictlyIncreasing(t *testing.T) {
	prev := XPRequiredForLevel(1)
	for level := 2; level <= 100; level++ {
		cur := XPRequiredForLevel(level)
		if cur <= prev {
			t.Fatalf("XPRequiredForLevel(%d) = %d, not greater than level %d (%d)", level, cur, level-1, prev)
		}
		prev = cur
	}
}

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		totalXP int
		want    int
	}{
		{-1, 1},
		{0, 1},
		{100, 1},
		{282, 1},
		{283, 2},
		{520, 3},
		{3162, 10},
	}

	for _, tt := range tests {
		if got := CalculateLevel(tt.totalXP); got != tt.want {
			t.Errorf("CalculateLevel(%d) = %d, want %d", tt.totalXP, got, tt.want)
		}
	}
}

func TestCalculateLevel_BracketsTotalXP(t *testing.T) {
	// For every total, the level's floor must be at or below the total
	// and the next level's floor strictly above it.
	for totalXP := 0; totalXP <= 20000; totalXP += 37 {
		level := CalculateLevel(totalXP)
		if level < 1 {
			t.Fatalf("CalculateLevel(%d) = %d, want >= 1", totalXP, level)
		}
		if XPRequiredForLevel(level) > totalXP {
			t.Fatalf("level %d floor %d exceeds total %d", level, XPRequiredForLevel(level), totalXP)
		}
		if XPRequiredForLevel(level+1) <= totalXP {
			t.Fatalf("level %d ceiling %d not above total %d", level, XPRequiredForLevel(level+1), totalXP)
		}
	}
}

func TestCalculateLevel_Monotonic(t *testing.T) {
	prev := CalculateLevel(0)
	for totalXP := 1; totalXP <= 20000; totalXP += 13 {
		cur := CalculateLevel(totalXP)
		if cur < prev {
			t.Fatalf("CalculateLevel decreased: %d XP -> level %d, but %d XP -> level %d", totalXP-13, prev, totalXP, cur)
		}
		prev = cur
	}
}

func TestXPToNextLevel(t *testing.T) {
	tests := []struct {
		totalXP      string
		xp           int
		wantProgress int
		wantTotal    int
	}{
		{"level 1 start", 0, 0, 283},
		{"mid level 1", 100, 100, 283},
		{"just past level 2", 300, 17, 237}, // 520 - 283
		{"negative clamps", -50, 0, 283},
	}

	for _, tt := range tests {
		progress, total := XPToNextLevel(tt.xp)
		if progress != tt.wantProgress || total != tt.wantTotal {
			t.Errorf("%s: XPToNextLevel(%d) = (%d, %d), want (%d, %d)",
				tt.totalXP, tt.xp, progress, total, tt.wantProgress, tt.wantTotal)
		}
	}
}
