/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package deprecate classifies targets against semantic version markers and
// wraps callables so that invoking a deprecated target emits a warning before
// delegating to the original behavior.
//
// The package is an independent utility. It shares the attrx error taxonomy
// (its configuration errors unwrap to apis.ErrConfig) but the attribute
// containers neither consume it nor feed it.
package deprecate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/mod/semver"

	"dirpx.dev/attrx/apis"
)

var (
	// ErrBadVersion rejects a version marker that is not a valid semantic
	// version.
	ErrBadVersion = fmt.Errorf("%w: malformed semantic version", apis.ErrConfig)
	// ErrNotCallable rejects wrapping a non-callable target without a
	// display name.
	ErrNotCallable = fmt.Errorf("%w: non-callable target requires WithName", apis.ErrConfig)
	// ErrUnsupported is returned by Wrap under WithStrict when the target is
	// already past its removal version.
	ErrUnsupported = errors.New("attrx(deprecate): target is past its removal version")
)

// Status is the deprecation state of a target at the current version.
type Status int

const (
	// StatusActive means the current version has not reached the
	// deprecation marker. No warning is emitted.
	StatusActive Status = iota
	// StatusDeprecated means the current version is at or past the
	// deprecation marker but before removal.
	StatusDeprecated
	// StatusUnsupported means the current version is at or past the
	// removal marker.
	StatusUnsupported
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusDeprecated:
		return "deprecated"
	case StatusUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Classify compares the current version against the deprecation markers.
//
// Versions are semantic version strings; a missing "v" prefix is tolerated.
// An empty from or removedIn disables the corresponding marker. The rules:
// current >= removedIn is unsupported; otherwise current >= from is
// deprecated; otherwise active.
func Classify(current, from, removedIn string) (Status, error) {
	cur, err := parseVersion("current", current)
	if err != nil {
		return StatusActive, err
	}
	if removedIn != "" {
		end, err := parseVersion("removedIn", removedIn)
		if err != nil {
			return StatusActive, err
		}
		if semver.Compare(cur, end) >= 0 {
			return StatusUnsupported, nil
		}
	}
	if from != "" {
		dep, err := parseVersion("from", from)
		if err != nil {
			return StatusActive, err
		}
		if semver.Compare(cur, dep) >= 0 {
			return StatusDeprecated, nil
		}
	}
	return StatusActive, nil
}

// parseVersion normalizes v to the "v"-prefixed form the semver package wants
// and validates it.
func parseVersion(field, v string) (string, error) {
	if v == "" {
		return "", &apis.ConfigError{Err: ErrBadVersion, Detail: field + " is empty"}
	}
	norm := v
	if !strings.HasPrefix(norm, "v") {
		norm = "v" + norm
	}
	if !semver.IsValid(norm) {
		return "", &apis.ConfigError{Err: ErrBadVersion, Detail: fmt.Sprintf("%s %q", field, v)}
	}
	return norm, nil
}

// Notice describes one deprecation: what is deprecated, what replaces it, and
// the version markers it was classified against.
type Notice struct {
	// Name is the display name of the deprecated target.
	Name string
	// ReplacedBy names the replacement, if any.
	ReplacedBy string
	// Current, From and RemovedIn are the version markers as given.
	Current   string
	From      string
	RemovedIn string
	// Note is appended verbatim to the rendered message.
	Note string
	// Status is the classification of Current against From and RemovedIn.
	Status Status
}

// Message renders the human-readable warning text for the notice.
// An active notice renders to the empty string.
func (n Notice) Message() string {
	var b strings.Builder
	switch n.Status {
	case StatusDeprecated:
		fmt.Fprintf(&b, "`%s` is deprecated", n.Name)
	case StatusUnsupported:
		fmt.Fprintf(&b, "`%s` was deprecated", n.Name)
	default:
		return ""
	}
	if n.ReplacedBy != "" {
		fmt.Fprintf(&b, " by `%s`", n.ReplacedBy)
	}
	if n.From != "" {
		fmt.Fprintf(&b, " from version `%s`", n.From)
	}
	if n.RemovedIn != "" {
		if n.Status == StatusUnsupported {
			fmt.Fprintf(&b, " and planned to be removed in version `%s`", n.RemovedIn)
		} else {
			fmt.Fprintf(&b, " and will be removed in version `%s`", n.RemovedIn)
		}
	}
	if n.Current != "" {
		fmt.Fprintf(&b, ". Current version `%s`", n.Current)
	}
	if n.Note != "" {
		b.WriteString(". ")
		b.WriteString(n.Note)
	}
	return b.String()
}

// Guard emits the warning for one notice. The zero value is not usable; build
// one with NewGuard.
type Guard struct {
	notice Notice
	logger *slog.Logger
	once   bool
	fired  sync.Once
}

// NewGuard builds a Guard for the notice. WithLogger and WithOnce apply;
// other options are ignored.
func NewGuard(n Notice, opts ...Option) *Guard {
	o := buildOptions(opts)
	return &Guard{notice: n, logger: o.logger, once: o.once}
}

// Notice returns the notice the guard warns about.
func (g *Guard) Notice() Notice { return g.notice }

// Warn emits one structured warning for the notice. Active notices are
// silent. Under WithOnce only the first call emits.
func (g *Guard) Warn(ctx context.Context) {
	if g.notice.Status == StatusActive {
		return
	}
	if g.once {
		g.fired.Do(func() { g.emit(ctx) })
		return
	}
	g.emit(ctx)
}

func (g *Guard) emit(ctx context.Context) {
	attrs := []slog.Attr{
		slog.String("name", g.notice.Name),
		slog.String("status", g.notice.Status.String()),
		slog.String("current", g.notice.Current),
	}
	if g.notice.ReplacedBy != "" {
		attrs = append(attrs, slog.String("replaced_by", g.notice.ReplacedBy))
	}
	if g.notice.RemovedIn != "" {
		attrs = append(attrs, slog.String("removed_in", g.notice.RemovedIn))
	}
	g.logger.LogAttrs(ctx, slog.LevelWarn, g.notice.Message(), attrs...)
}

// Wrap classifies target against the version markers and returns a
// same-signature proxy that warns before delegating.
//
// An active target is returned unchanged. A non-callable target is permitted
// only when WithName supplies a display name; it is returned untouched after
// a single warning. Under WithStrict an unsupported target fails with
// ErrUnsupported instead of wrapping.
func Wrap(target any, current, from, removedIn string, opts ...Option) (any, error) {
	status, err := Classify(current, from, removedIn)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	v := reflect.ValueOf(target)
	callable := v.IsValid() && v.Kind() == reflect.Func && !v.IsNil()

	name := o.name
	if name == "" {
		if !callable {
			return nil, &apis.ConfigError{Err: ErrNotCallable, Detail: "supply a display name"}
		}
		name = funcName(v)
	}

	notice := Notice{
		Name:       name,
		ReplacedBy: o.replacedBy,
		Current:    current,
		From:       from,
		RemovedIn:  removedIn,
		Note:       o.note,
		Status:     status,
	}

	if status == StatusUnsupported && o.strict {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, notice.Message())
	}
	if status == StatusActive {
		return target, nil
	}

	guard := &Guard{notice: notice, logger: o.logger, once: o.once}
	if !callable {
		// Nothing to intercept; warn once at wrap time.
		guard.Warn(context.Background())
		return target, nil
	}

	t := v.Type()
	proxy := reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		guard.Warn(context.Background())
		if t.IsVariadic() {
			return v.CallSlice(args)
		}
		return v.Call(args)
	})
	return proxy.Interface(), nil
}

// funcName derives a display name from the function's runtime symbol.
func funcName(v reflect.Value) string {
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		name := f.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	return "function"
}

// Option adjusts Wrap and NewGuard behavior.
type Option func(*options)

type options struct {
	name       string
	replacedBy string
	note       string
	logger     *slog.Logger
	strict     bool
	once       bool
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithName sets the display name used in warnings. Required for non-callable
// targets.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithReplacedBy names the replacement mentioned in warnings.
func WithReplacedBy(name string) Option {
	return func(o *options) { o.replacedBy = name }
}

// WithNote appends extra text to the warning message.
func WithNote(note string) Option {
	return func(o *options) { o.note = note }
}

// WithLogger routes warnings to l instead of slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStrict makes Wrap fail with ErrUnsupported when the target is past its
// removal version.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithOnce collapses repeated warnings from one wrapper to a single emission.
func WithOnce() Option {
	return func(o *options) { o.once = true }
}
