package models

import (
	"testing"
	"time"
)

func TestAdminSessionIsValid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	maxAge := 24 * time.Hour

	tests := []struct {
		name    string
		session AdminSession
		want    bool
	}{
		{
			name:    "fresh authenticated session",
			session: AdminSession{Authenticated: true, IssuedAt: now.Add(-time.Hour)},
			want:    true,
		},
		{
			name:    "just issued",
			session: AdminSession{Authenticated: true, IssuedAt: now},
			want:    true,
		},
		{
			name:    "expired",
			session: AdminSession{Authenticated: true, IssuedAt: now.Add(-25 * time.Hour)},
			want:    false,
		},
		{
			name:    "exactly at max age",
			session: AdminSession{Authenticated: true, IssuedAt: now.Add(-maxAge)},
			want:    false,
		},
		{
			name:    "not authenticated",
			session: AdminSession{Authenticated: false, IssuedAt: now.Add(-time.Hour)},
			want:    false,
		},
		{
			name:    "issued in the future",
			session: AdminSession{Authenticated: true, IssuedAt: now.Add(time.Hour)},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.IsValid(now, maxAge); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}
