package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid json format",
			format:    "json",
			expectErr: false,
		},
		{
			name:      "CSV not supported",
			format:    "csv",
			expectErr: true,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
		{
			name:      "Leading/trailing spaces",
			format:    " json ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateOutputFormat(%q) expected error but got none", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateOutputFormat(%q) unexpected error: %v", tt.format, err)
			}
		})
	}
}

func TestValidateCacheBackend(t *testing.T) {
	for _, backend := range []string{"none", "memory", "redis"} {
		if err := ValidateCacheBackend(backend); err != nil {
			t.Errorf("ValidateCacheBackend(%q) unexpected error: %v", backend, err)
		}
	}
	for _, backend := range []string{"", "memcached", "Redis"} {
		if err := ValidateCacheBackend(backend); err == nil {
			t.Errorf("ValidateCacheBackend(%q) expected error but got none", backend)
		}
	}
}

func TestValidateLogFormat(t *testing.T) {
	for _, format := range []string{"", "json", "console"} {
		if err := ValidateLogFormat(format); err != nil {
			t.Errorf("ValidateLogFormat(%q) unexpected error: %v", format, err)
		}
	}
	if err := ValidateLogFormat("text"); err == nil {
		t.Error("ValidateLogFormat(\"text\") expected error but got none")
	}
}
