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

package record

// Validator checks a decoded record. It is called after a successful decode.
type Validator interface {
	Validate(v any) error
}

// Option configures encoding and decoding.
type Option func(*config)

type config struct {
	validator       Validator
	disallowUnknown bool
}

// WithValidator runs v on every successfully decoded record.
func WithValidator(v Validator) Option {
	return func(c *config) {
		c.validator = v
	}
}

// WithDisallowUnknown rejects input carrying fields the target does not
// declare.
func WithDisallowUnknown() Option {
	return func(c *config) {
		c.disallowUnknown = true
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
