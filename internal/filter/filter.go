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

package filter

import (
	"strings"
	"time"

	"github.com/mikelane/helmsweep/internal/helm"
)

// Spec describes which releases qualify for deletion.
type Spec struct {
	// Prefix is matched byte-for-byte against the start of the release name,
	// case-sensitively. Empty matches every release.
	Prefix string

	// MaxAge is the minimum age a release must have reached to qualify.
	// Must be non-negative. Zero means every prefix match qualifies.
	MaxAge time.Duration
}

// Select returns the releases whose names start with spec.Prefix and whose
// age relative to now is at least spec.MaxAge. The age comparison is
// inclusive, so a release exactly MaxAge old qualifies. Releases created in
// the future relative to now never qualify.
//
// The result preserves the input order. Select is pure: it reads no clock
// and has no side effects, so the same inputs always produce the same output.
func Select(releases []helm.Release, spec Spec, now time.Time) []helm.Release {
	selected := make([]helm.Release, 0, len(releases))
	for _, rel := range releases {
		if !strings.HasPrefix(rel.Name, spec.Prefix) {
			continue
		}
		if now.Sub(rel.Created) < spec.MaxAge {
			continue
		}
		selected = append(selected, rel)
	}
	return selected
}
