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

package helm

import (
	"context"
	"errors"
	"time"

	"helm.sh/helm/v3/pkg/storage/driver"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
)

// Release is an immutable snapshot of a Helm release captured at list time.
// Identity is the release name, which is unique within a namespace. The
// snapshot may be stale relative to cluster state by the time a deletion runs.
type Release struct {
	// Name is the release name.
	Name string

	// Created is the timestamp of the release's most recent deployment, the
	// same timestamp `helm list` reports. It anchors the age calculation.
	Created time.Time
}

// Client lists, deletes, and probes Helm releases in a single namespace.
type Client interface {
	// List returns a snapshot of all releases in the namespace.
	List(ctx context.Context) ([]Release, error)

	// Uninstall deletes the named release. The returned error, if any, can be
	// classified with ClassifyError.
	Uninstall(ctx context.Context, name string) error

	// Exists reports whether the named release is still present.
	Exists(ctx context.Context, name string) (bool, error)
}

// ErrorKind classifies an uninstall failure.
type ErrorKind int

const (
	// KindUnknown covers failures with no more specific classification.
	KindUnknown ErrorKind = iota

	// KindNotFound means the release does not exist in the namespace.
	KindNotFound

	// KindPermissionDenied means the cluster rejected the request for
	// authorization reasons.
	KindPermissionDenied
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	default:
		return "unknown"
	}
}

// ClassifyError maps an error returned by Uninstall to an ErrorKind.
// A nil error classifies as KindUnknown.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, driver.ErrReleaseNotFound) {
		return KindNotFound
	}
	if k8serrors.IsForbidden(err) || k8serrors.IsUnauthorized(err) {
		return KindPermissionDenied
	}
	return KindUnknown
}
