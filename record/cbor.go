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
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	cborEncMode       cbor.EncMode
	cborDecMode       cbor.DecMode
	cborStrictDecMode cbor.DecMode
)

func init() {
	encOptions := cbor.CoreDetEncOptions()
	// Enumerations and nullables travel as text strings via MarshalText.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString

	var err error
	cborEncMode, err = encOptions.EncMode()
	if err != nil {
		panic("record: CBOR encoder initialization failed: " + err.Error())
	}

	decOptions := cbor.DecOptions{
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}
	cborDecMode, err = decOptions.DecMode()
	if err != nil {
		panic("record: CBOR decoder initialization failed: " + err.Error())
	}

	decOptions.ExtraReturnErrors = cbor.ExtraDecErrorUnknownField
	cborStrictDecMode, err = decOptions.DecMode()
	if err != nil {
		panic("record: CBOR decoder initialization failed: " + err.Error())
	}
}

type cborCodec struct{}

func (cborCodec) marshal(v any) ([]byte, error) {
	return cborEncMode.Marshal(v)
}

func (cborCodec) unmarshal(data []byte, out any, cfg *config) error {
	if cfg.disallowUnknown {
		return cborStrictDecMode.Unmarshal(data, out)
	}

	return cborDecMode.Unmarshal(data, out)
}
