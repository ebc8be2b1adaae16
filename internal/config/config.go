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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tool's file-based defaults. Command-line flags override
// every value here.
type Config struct {
	Kubernetes KubernetesConfig `yaml:"kubernetes"`
	Helm       HelmConfig       `yaml:"helm"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// KubernetesConfig holds cluster targeting defaults.
type KubernetesConfig struct {
	// DefaultNamespace is used when --namespace is not given.
	DefaultNamespace string `yaml:"default_namespace"`

	// ContextRequired makes --context mandatory. Disable it for environments
	// that always run against the kubeconfig's current context.
	ContextRequired bool `yaml:"context_required"`
}

// HelmConfig holds release selection and verification defaults.
type HelmConfig struct {
	// ReleasePrefix is used when --prefix is not given.
	ReleasePrefix string `yaml:"release_prefix"`

	// DaysThreshold is used when --days is not given.
	DaysThreshold int `yaml:"days_threshold"`

	Verification VerificationConfig `yaml:"verification"`
}

// VerificationConfig bounds the post-delete removal poll.
type VerificationConfig struct {
	// PollIntervalSeconds is the wait between existence checks.
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`

	// MaxAttempts caps how many existence checks run before giving up.
	MaxAttempts int `yaml:"max_attempts"`
}

// LoggingConfig holds log output defaults.
type LoggingConfig struct {
	// File is an optional log file path written in addition to stderr.
	File string `yaml:"file"`

	// JSON selects structured JSON output; console encoding otherwise.
	JSON bool `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Kubernetes: KubernetesConfig{
			DefaultNamespace: "default",
			ContextRequired:  true,
		},
		Helm: HelmConfig{
			ReleasePrefix: "dev",
			DaysThreshold: 5,
			Verification: VerificationConfig{
				PollIntervalSeconds: 2,
				MaxAttempts:         10,
			},
		},
		Logging: LoggingConfig{
			JSON: true,
		},
	}
}

// Load reads the YAML file at path over the built-in defaults, so keys absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Helm.DaysThreshold < 0 {
		return fmt.Errorf("helm.days_threshold must be non-negative, got %d", c.Helm.DaysThreshold)
	}
	if c.Helm.Verification.PollIntervalSeconds <= 0 {
		return fmt.Errorf("helm.verification.poll_interval_seconds must be positive, got %d", c.Helm.Verification.PollIntervalSeconds)
	}
	if c.Helm.Verification.MaxAttempts <= 0 {
		return fmt.Errorf("helm.verification.max_attempts must be positive, got %d", c.Helm.Verification.MaxAttempts)
	}
	return nil
}
