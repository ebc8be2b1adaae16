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

// Package sweep orchestrates the deletion of stale Helm releases.
//
// The Orchestrator processes candidates one at a time, strictly in input
// order: delete the release, verify it is actually gone, classify the result.
// Per-release failures are data in the returned Report, not errors; the run
// only observes the surrounding context for cancellation. Three terminal
// states exist per candidate:
//
//   - succeeded: the delete was accepted and the release was verified absent
//   - failed: the cluster rejected the delete call
//   - verification timed out: the delete was accepted but absence could not
//     be observed within the verification budget
//
// The distinction between the last two matters for operators: "failed" means
// the cluster said no, "timed out" means the cluster said yes but the result
// has not been observed yet.
//
// The Scheduler wraps the orchestrator in a ticker loop for unattended
// periodic sweeps with graceful shutdown via context cancellation.
package sweep
