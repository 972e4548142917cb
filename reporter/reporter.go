// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reporter

import (
	"fmt"
	"sync"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, processing will abort with that error. If the
// reporter returns nil, the caller may continue with its next input, so that
// as many errors as possible are reported.
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. This is used
// for indicating non-error messages to the calling program for things that do
// not cause the parse to fail, such as a file that parses but does not
// round-trip. Though they are just warnings, the details are supplied to the
// reporter via an error type.
type WarningReporter func(ErrorWithPos)

type Reporter interface {
	Error(ErrorWithPos) error
	Warning(ErrorWithPos)
}

func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler funnels the errors and warnings of a run over several inputs into a
// Reporter, and remembers the first error that the Reporter chose to abort
// with.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

func (h *Handler) HandleErrorf(pos SourcePos, format string, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	err := h.reporter.Error(Errorf(pos, format, args...))
	h.err = err
	return err
}

func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.errsReported = true
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

func (h *Handler) HandleWarning(pos SourcePos, err error) {
	// no need for lock; warnings don't interact with mutable fields
	h.reporter.Warning(errorWithSourcePos{pos: pos, underlying: err})
}

func (h *Handler) HandleWarningf(pos SourcePos, format string, args ...any) {
	h.HandleWarning(pos, fmt.Errorf(format, args...))
}

func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}
