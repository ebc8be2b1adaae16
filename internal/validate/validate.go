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
	"fmt"
	"regexp"
)

const (
	kubernetesNameMaxLength = 253
	releasePrefixMaxLength  = 63
)

var (
	// RFC 1123 subdomain, the charset Kubernetes enforces for namespaces
	// and context-style names.
	kubernetesNamePattern = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?(\.[a-z0-9]([-a-z0-9]*[a-z0-9])?)*$`)

	// Release prefixes must start with the DNS-label charset but may end on
	// a hyphen, since a prefix like "pr-" is a fragment of a valid name.
	releasePrefixPattern = regexp.MustCompile(`^[a-z0-9][-a-z0-9]*$`)
)

// KubernetesName validates a namespace or context name. field names the
// input in error messages.
func KubernetesName(name, field string) error {
	if name == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	if len(name) > kubernetesNameMaxLength {
		return fmt.Errorf("%s exceeds maximum length of %d characters", field, kubernetesNameMaxLength)
	}
	if !kubernetesNamePattern.MatchString(name) {
		return fmt.Errorf("%s %q must be lowercase alphanumeric characters, '-' or '.', and must start and end with an alphanumeric character", field, name)
	}
	return nil
}

// ReleasePrefix validates a release name prefix. Empty is allowed and means
// every release name matches.
func ReleasePrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	if len(prefix) > releasePrefixMaxLength {
		return fmt.Errorf("release prefix exceeds maximum length of %d characters", releasePrefixMaxLength)
	}
	if !releasePrefixPattern.MatchString(prefix) {
		return fmt.Errorf("release prefix %q must be lowercase alphanumeric characters or '-', starting with an alphanumeric character", prefix)
	}
	return nil
}

// DaysThreshold validates the age threshold in days.
func DaysThreshold(days int) error {
	if days < 0 {
		return fmt.Errorf("days threshold must be non-negative, got %d", days)
	}
	return nil
}
