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
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// Kind classifies a requested type.
type Kind int

const (
	// KindOther is any type the registry does not handle.
	KindOther Kind = iota

	// KindEnum is a registered enumeration type.
	KindEnum

	// KindNullableEnum is Nullable[E] for a registered enumeration E.
	KindNullableEnum
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindNullableEnum:
		return "nullable-enum"
	default:
		return "other"
	}
}

// Codec is the type-erased view of an enumeration codec, used by marshalling
// code that dispatches on [reflect.Type].
type Codec interface {
	// Type returns the type the codec handles (E or Nullable[E]).
	Type() reflect.Type

	// Kind returns KindEnum or KindNullableEnum.
	Kind() Kind

	// Name returns the qualified type name.
	Name() string

	// Texts returns the wire texts in declaration order.
	Texts() []string

	// DecodeString decodes a literal into a value of Type.
	DecodeString(text string) (any, error)

	// DecodeNull decodes the wire's null marker.
	DecodeNull() (any, error)

	// EncodeValue encodes a value of Type. ok is false when the value is
	// absent and the null marker should be written instead.
	EncodeValue(v any) (text string, ok bool, err error)

	// Declared reports whether v is a value of Type holding a declared
	// member. An absent nullable counts as declared.
	Declared(v any) bool
}

// Registry holds the codecs of registered enumeration types.
//
// Lookups are lock-free: the registry publishes an immutable map through an
// atomic pointer and copies it on registration.
type Registry struct {
	opts *Options

	codecs atomic.Pointer[map[reflect.Type]Codec]
	mu     sync.Mutex // serializes registration
}

// NewRegistry creates an empty registry.
//
// Example:
//
//	r := wiretext.NewRegistry(wiretext.WithStrictEncode())
//	states := wiretext.RegisterWith(r, members...)
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{opts: applyOptions(opts)}
	m := make(map[reflect.Type]Codec)
	r.codecs.Store(&m)

	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by [Register] and the
// package-level lookup functions.
func Default() *Registry {
	return defaultRegistry
}

// Register declares an enumeration in the default registry. Call it from a
// package-level variable initializer next to the type definition.
//
// Register panics with a *ConstructionError if the declaration is invalid or
// the type is already registered.
func Register[E comparable](members ...Member[E]) *Enum[E] {
	return RegisterWith(defaultRegistry, members...)
}

// RegisterWith declares an enumeration in r. See [Register].
func RegisterWith[E comparable](r *Registry, members ...Member[E]) *Enum[E] {
	typ := reflect.TypeFor[E]()
	if err := validateMembers(members); err != nil {
		panic(&ConstructionError{Type: typ, Reason: err.Error()})
	}

	e := &Enum[E]{
		reg:     r,
		typ:     typ,
		members: slices.Clone(members),
	}
	n := &nullableCodec[E]{
		enum: e,
		typ:  reflect.TypeFor[Nullable[E]](),
	}
	if err := r.publish(e, n); err != nil {
		panic(err)
	}

	return e
}

// publish adds codecs with a copy-on-write swap.
func (r *Registry) publish(codecs ...Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.codecs.Load()
	for _, c := range codecs {
		if _, dup := (*m)[c.Type()]; dup {
			return &ConstructionError{Type: c.Type(), Reason: "type is already registered"}
		}
	}

	newMap := make(map[reflect.Type]Codec, len(*m)+len(codecs))
	maps.Copy(newMap, *m)
	for _, c := range codecs {
		newMap[c.Type()] = c
	}
	r.codecs.Store(&newMap)

	return nil
}

// Lookup returns the codec for t. It declines with false for any type that is
// neither a registered enumeration nor a Nullable of one.
func (r *Registry) Lookup(t reflect.Type) (Codec, bool) {
	if t == nil {
		return nil, false
	}
	c, ok := (*r.codecs.Load())[t]

	return c, ok
}

// Classify reports how t is handled by the registry.
func (r *Registry) Classify(t reflect.Type) Kind {
	if c, ok := r.Lookup(t); ok {
		return c.Kind()
	}

	return KindOther
}

// codecFor is Lookup for callers that already expect an enum type.
func (r *Registry) codecFor(t reflect.Type) (Codec, error) {
	c, ok := r.Lookup(t)
	if !ok {
		return nil, &ConstructionError{Type: t, Err: ErrNotEnum}
	}

	return c, nil
}

// Decode decodes text as a value of type t.
func (r *Registry) Decode(t reflect.Type, text string) (any, error) {
	c, err := r.codecFor(t)
	if err != nil {
		return nil, err
	}

	return c.DecodeString(text)
}

// Encode encodes v as type t. ok is false when v is absent.
func (r *Registry) Encode(t reflect.Type, v any) (string, bool, error) {
	c, err := r.codecFor(t)
	if err != nil {
		return "", false, err
	}

	return c.EncodeValue(v)
}

// Types returns the registered types, enumerations and their nullable
// variants, sorted by name.
func (r *Registry) Types() []reflect.Type {
	m := r.codecs.Load()
	out := make([]reflect.Type, 0, len(*m))
	for t := range *m {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})

	return out
}

// ByName finds a codec by qualified type name ("api.StateType") or, when
// unambiguous, by bare type name ("StateType", any case).
func (r *Registry) ByName(name string) (Codec, bool) {
	var match Codec
	matches := 0
	for t, c := range *r.codecs.Load() {
		if t.String() == name {
			return c, true
		}
		if strings.EqualFold(t.Name(), name) {
			match = c
			matches++
		}
	}

	return match, matches == 1
}

func (r *Registry) tableBuilt(t reflect.Type, members int) {
	r.opts.Logger.Debug("wiretext: text table built", "type", t.String(), "members", members)
	if r.opts.Events.TableBuilt != nil {
		r.opts.Events.TableBuilt(t, members)
	}
}

func (r *Registry) unknownLiteral(t reflect.Type, literal string) {
	r.opts.Logger.Debug("wiretext: unknown literal", "type", t.String(), "literal", literal)
	if r.opts.Events.UnknownLiteral != nil {
		r.opts.Events.UnknownLiteral(t, literal)
	}
}

func (r *Registry) encodeFallback(t reflect.Type, fallback string) {
	r.opts.Logger.Warn("wiretext: encoding undeclared member", "type", t.String(), "fallback", fallback)
	if r.opts.Events.EncodeFallback != nil {
		r.opts.Events.EncodeFallback(t, fallback)
	}
}

// Lookup returns the codec for t from the default registry.
func Lookup(t reflect.Type) (Codec, bool) { return defaultRegistry.Lookup(t) }

// Classify reports how t is handled by the default registry.
func Classify(t reflect.Type) Kind { return defaultRegistry.Classify(t) }

// Decode decodes text as type t using the default registry.
func Decode(t reflect.Type, text string) (any, error) { return defaultRegistry.Decode(t, text) }

// Encode encodes v as type t using the default registry.
func Encode(t reflect.Type, v any) (string, bool, error) { return defaultRegistry.Encode(t, v) }

// Types returns the types registered in the default registry.
func Types() []reflect.Type { return defaultRegistry.Types() }

// ByName finds a codec in the default registry by type name.
func ByName(name string) (Codec, bool) { return defaultRegistry.ByName(name) }

// DecodeAs decodes text as E using the default registry.
func DecodeAs[E comparable](text string) (E, error) {
	e, err := enumFor[E](defaultRegistry)
	if err != nil {
		var zero E
		return zero, err
	}

	return e.Decode(text)
}

// EncodeAs encodes v using the default registry.
func EncodeAs[E comparable](v E) (string, error) {
	e, err := enumFor[E](defaultRegistry)
	if err != nil {
		return "", err
	}

	return e.Encode(v), nil
}

func enumFor[E comparable](r *Registry) (*Enum[E], error) {
	t := reflect.TypeFor[E]()
	c, err := r.codecFor(t)
	if err != nil {
		return nil, err
	}
	e, ok := c.(*Enum[E])
	if !ok {
		return nil, &ConstructionError{Type: t, Reason: "registered as " + c.Kind().String(), Err: ErrNotEnum}
	}

	return e, nil
}
