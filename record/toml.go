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

	"github.com/BurntSushi/toml"
)

type tomlCodec struct{}

func (tomlCodec) marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (tomlCodec) unmarshal(data []byte, out any, cfg *config) error {
	meta, err := toml.Decode(string(data), out)
	if err != nil {
		return err
	}

	if cfg.disallowUnknown {
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("%w: %s", ErrUnknownField, undecoded[0])
		}
	}

	return nil
}
