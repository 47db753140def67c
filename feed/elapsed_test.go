package feed

import (
	"testing"
	"time"
)

func TestElapsedLabelBuckets(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 45 * time.Second, "45s"},
		{"minutes truncate", 125 * time.Second, "2m"},
		{"just under an hour", 3599 * time.Second, "59m"},
		{"hours truncate", 5*time.Hour + 59*time.Minute, "5h"},
		{"just under a day", 86399 * time.Second, "23h"},
		{"past a day uses the date", 90000 * time.Second, "Jun 14"},
		{"days use the date", 40 * 24 * time.Hour, "May 6"},
		{"past a year adds it", 400 * 24 * time.Hour, "May 11, 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElapsedLabel(now.Add(-tt.ago), now)
			if got != tt.want {
				t.Fatalf("ElapsedLabel(-%v) = %q, want %q", tt.ago, got, tt.want)
			}
		})
	}
}

func TestElapsedLabelFreshPost(t *testing.T) {
	now := time.Now()
	if got := ElapsedLabel(now, now); got != "0s" {
		t.Fatalf("expected 0s for a fresh post, got %q", got)
	}
}
