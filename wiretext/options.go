// Copyright 2026 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wiretext

import (
	"log/slog"
	"reflect"
)

// Events provides hooks for observability without coupling.
type Events struct {
	// TableBuilt is called once per type after its text table is published.
	TableBuilt func(typ reflect.Type, members int)

	// UnknownLiteral is called when decoding meets a literal with no mapping.
	UnknownLiteral func(typ reflect.Type, literal string)

	// EncodeFallback is called when a value outside the declared members is
	// encoded and the fallback text is emitted instead.
	EncodeFallback func(typ reflect.Type, fallback string)
}

// Options configures a [Registry].
type Options struct {
	Logger       *slog.Logger // Logger for diagnostics (default: discard)
	Events       Events       // Observability hooks
	StrictEncode bool         // Fail MarshalText for undeclared values instead of falling back
}

// Option configures registry behavior.
type Option func(*Options)

// WithLogger sets the logger used for diagnostics.
// A nil logger restores the default discarding logger.
//
// Example:
//
//	r := wiretext.NewRegistry(wiretext.WithLogger(slog.Default()))
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithEvents sets observability hooks.
//
// Example:
//
//	r := wiretext.NewRegistry(wiretext.WithEvents(wiretext.Events{
//	    UnknownLiteral: func(typ reflect.Type, literal string) {
//	        unknownLiterals.WithLabelValues(typ.Name()).Inc()
//	    },
//	}))
func WithEvents(events Events) Option {
	return func(o *Options) {
		o.Events = events
	}
}

// WithStrictEncode makes MarshalText return [ErrUndeclaredMember] for values
// that are not declared members of their type. Without it, such values encode
// to their underlying Go representation and an EncodeFallback event is raised.
func WithStrictEncode() Option {
	return func(o *Options) {
		o.StrictEncode = true
	}
}

func defaultOptions() *Options {
	return &Options{
		Logger: slog.New(slog.DiscardHandler),
	}
}

func applyOptions(opts []Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return o
}
