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
	"encoding/json"
)

type jsonCodec struct{}

func (jsonCodec) marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) unmarshal(data []byte, out any, cfg *config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if cfg.disallowUnknown {
		dec.DisallowUnknownFields()
	}

	return dec.Decode(out)
}
