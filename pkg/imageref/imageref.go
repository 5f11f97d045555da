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

// Package imageref extracts version information from OCI image references.
// Container image tags are a common carrier of semantic versions
// (nvcr.io/nvidia/gpu-operator:v25.3.0); this package parses the reference
// and turns the tag into a semver.Version.
package imageref

import (
	"fmt"

	"github.com/distribution/reference"

	"github.com/NVIDIA/version-kit/pkg/semver"
)

// Reference is a parsed image reference with its tag interpreted as a
// semantic version.
type Reference struct {
	// Registry is the registry host (e.g. "nvcr.io", "localhost:5000").
	Registry string `json:"registry" yaml:"registry"`
	// Repository is the image repository path (e.g. "nvidia/gpu-operator").
	Repository string `json:"repository" yaml:"repository"`
	// Tag is the raw tag as it appears in the reference.
	Tag string `json:"tag" yaml:"tag"`
	// Version is the tag parsed as a semantic version.
	Version *semver.Version `json:"version" yaml:"version"`
}

// Parse normalizes an image reference, extracts its components, and parses
// the tag as a semantic version (loose grammar; tags routinely carry a "v"
// prefix). It fails if the reference is malformed, untagged, or carries a
// tag that is not a version.
func Parse(ref string) (*Reference, error) {
	named, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid image reference %q: %w", ref, err)
	}

	tagged, ok := named.(reference.Tagged)
	if !ok {
		return nil, fmt.Errorf("image reference %q has no tag to read a version from", ref)
	}

	v, err := semver.Parse(tagged.Tag())
	if err != nil {
		return nil, fmt.Errorf("tag %q of %q is not a version: %w", tagged.Tag(), ref, err)
	}

	return &Reference{
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
		Tag:        tagged.Tag(),
		Version:    v,
	}, nil
}

// String returns the normalized image reference with its tag.
func (r *Reference) String() string {
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}
