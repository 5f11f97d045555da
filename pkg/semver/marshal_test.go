// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package semver

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

type release struct {
	Name    string   `json:"name" yaml:"name"`
	Version *Version `json:"version" yaml:"version"`
}

func TestJSONEmbedding(t *testing.T) {
	r := release{Name: "gpu-operator", Version: MustParse("v25.3.0-rc.1")}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"name":"gpu-operator","version":"v25.3.0-rc.1"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}

	var back release
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Version.String() != r.Version.String() {
		t.Errorf("round trip = %s, want %s", back.Version, r.Version)
	}
	if back.Version.Strict() {
		t.Error("unmarshal must re-infer loose mode from the v prefix")
	}
}

func TestYAMLEmbedding(t *testing.T) {
	r := release{Name: "cert-manager", Version: MustParse("1.14.2")}

	data, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var back release
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Version.String() != "1.14.2" {
		t.Errorf("round trip = %s, want 1.14.2", back.Version)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var back release
	if err := json.Unmarshal([]byte(`{"version":"1.2"}`), &back); err == nil {
		t.Error("two-component version must fail to unmarshal")
	}
	if err := yaml.Unmarshal([]byte("version: nope"), &back); err == nil {
		t.Error("non-version text must fail to unmarshal")
	}
}
