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
	"errors"
	"fmt"
	"testing"

	"helm.sh/helm/v3/pkg/storage/driver"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

func TestClassifyError_release_not_found(t *testing.T) {
	err := fmt.Errorf("uninstall: %w", driver.ErrReleaseNotFound)

	if kind := ClassifyError(err); kind != KindNotFound {
		t.Errorf("ClassifyError() = %v, want %v", kind, KindNotFound)
	}
}

func TestClassifyError_forbidden(t *testing.T) {
	err := k8serrors.NewForbidden(
		schema.GroupResource{Resource: "secrets"},
		"sh.helm.release.v1.pr-123.v1",
		errors.New("RBAC: access denied"),
	)

	if kind := ClassifyError(err); kind != KindPermissionDenied {
		t.Errorf("ClassifyError() = %v, want %v", kind, KindPermissionDenied)
	}
}

func TestClassifyError_unauthorized(t *testing.T) {
	err := k8serrors.NewUnauthorized("token expired")

	if kind := ClassifyError(err); kind != KindPermissionDenied {
		t.Errorf("ClassifyError() = %v, want %v", kind, KindPermissionDenied)
	}
}

func TestClassifyError_unrecognized_error_is_unknown(t *testing.T) {
	err := errors.New("connection refused")

	if kind := ClassifyError(err); kind != KindUnknown {
		t.Errorf("ClassifyError() = %v, want %v", kind, KindUnknown)
	}
}

func TestClassifyError_nil_is_unknown(t *testing.T) {
	if kind := ClassifyError(nil); kind != KindUnknown {
		t.Errorf("ClassifyError(nil) = %v, want %v", kind, KindUnknown)
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindNotFound, "not found"},
		{KindPermissionDenied, "permission denied"},
		{KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
