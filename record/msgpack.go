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

import (
	"bytes"
	"fmt"
	"reflect"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"rivaas.dev/forgejo/wiretext"
)

// msgpackTypes tracks which wiretext types have msgpack codecs. Enumerations
// are registered with wiretext from package initializers anywhere in the
// program, so registration is synced before every encode and decode.
var msgpackTypes struct {
	sync.Mutex
	seen map[reflect.Type]struct{}
}

func syncMsgpackTypes() {
	types := wiretext.Types()

	msgpackTypes.Lock()
	defer msgpackTypes.Unlock()

	if len(msgpackTypes.seen) == len(types) {
		return
	}
	if msgpackTypes.seen == nil {
		msgpackTypes.seen = make(map[reflect.Type]struct{}, len(types))
	}

	for _, t := range types {
		if _, ok := msgpackTypes.seen[t]; ok {
			continue
		}
		c, ok := wiretext.Lookup(t)
		if !ok {
			continue
		}
		msgpack.Register(reflect.Zero(t).Interface(), msgpackEncoder(c), msgpackDecoder(c))
		msgpackTypes.seen[t] = struct{}{}
	}
}

// msgpackEncoder writes the wire text of an enumeration as a string, and an
// absent nullable as nil.
func msgpackEncoder(c wiretext.Codec) func(*msgpack.Encoder, reflect.Value) error {
	return func(enc *msgpack.Encoder, v reflect.Value) error {
		text, ok, err := c.EncodeValue(v.Interface())
		if err != nil {
			return err
		}
		if !ok {
			return enc.EncodeNil()
		}

		return enc.EncodeString(text)
	}
}

func msgpackDecoder(c wiretext.Codec) func(*msgpack.Decoder, reflect.Value) error {
	return func(dec *msgpack.Decoder, v reflect.Value) error {
		code, err := dec.PeekCode()
		if err != nil {
			return err
		}

		var decoded any
		if code == msgpcode.Nil {
			if err := dec.DecodeNil(); err != nil {
				return err
			}
			decoded, err = c.DecodeNull()
		} else {
			var text string
			if text, err = dec.DecodeString(); err != nil {
				return fmt.Errorf("%s: %w", c.Name(), err)
			}
			decoded, err = c.DecodeString(text)
		}
		if err != nil {
			return err
		}

		v.Set(reflect.ValueOf(decoded))

		return nil
	}
}

type msgpackCodec struct{}

func (msgpackCodec) marshal(v any) ([]byte, error) {
	syncMsgpackTypes()

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (msgpackCodec) unmarshal(data []byte, out any, cfg *config) error {
	syncMsgpackTypes()

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	dec.DisallowUnknownFields(cfg.disallowUnknown)

	return dec.Decode(out)
}
