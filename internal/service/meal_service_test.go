package service

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "canonical date is unchanged",
			input: "2024-11-01",
			want:  "2024-11-01",
		},
		{
			name:  "RFC3339 timestamp is truncated",
			input: "2024-11-01T18:30:00Z",
			want:  "2024-11-01",
		},
		{
			name:  "timestamp without zone is truncated",
			input: "2024-11-01T18:30:00",
			want:  "2024-11-01",
		},
		{
			name:    "garbage is rejected",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "empty string is rejected",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("normalizeDate(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeDate(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("normalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
			}

			// Normalization must be idempotent.
			again, err := normalizeDate(got)
			if err != nil {
				t.Fatalf("normalizeDate(%q) failed on second pass: %v", got, err)
			}
			if again != got {
				t.Errorf("normalizeDate not idempotent: %q became %q", got, again)
			}
		})
	}
}
