/*
Copyright (c) 2025 Mike Lane

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package validate

import (
	"strings"
	"testing"
)

func TestKubernetesName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "default", false},
		{"with hyphens", "preview-envs", false},
		{"with dots", "cluster.example.com", false},
		{"empty", "", true},
		{"uppercase", "Default", true},
		{"leading hyphen", "-preview", true},
		{"trailing hyphen", "preview-", true},
		{"underscore", "preview_envs", true},
		{"too long", strings.Repeat("a", 254), true},
		{"max length", strings.Repeat("a", 253), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := KubernetesName(tt.input, "namespace")
			if (err != nil) != tt.wantErr {
				t.Errorf("KubernetesName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestReleasePrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "dev", false},
		{"trailing hyphen fragment", "pr-", false},
		{"with digits", "pr-2024-", false},
		{"empty matches all", "", false},
		{"uppercase", "PR-", true},
		{"leading hyphen", "-pr", true},
		{"too long", strings.Repeat("a", 64), true},
		{"max length", strings.Repeat("a", 63), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ReleasePrefix(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReleasePrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestDaysThreshold(t *testing.T) {
	if err := DaysThreshold(0); err != nil {
		t.Errorf("DaysThreshold(0) = %v, want nil", err)
	}
	if err := DaysThreshold(30); err != nil {
		t.Errorf("DaysThreshold(30) = %v, want nil", err)
	}
	if err := DaysThreshold(-1); err == nil {
		t.Error("DaysThreshold(-1) = nil, want error")
	}
}
