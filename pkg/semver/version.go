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
	"fmt"
)

// Version is a mutable semantic-version value with Major, Minor, and Patch
// components, an optional pre-release label, and a strictness mode that
// controls the leading "v" prefix. Fields are private; all access goes
// through the documented accessors and mutators, and every mutator validates
// its input before changing any state.
//
// The zero value is a valid strict "0.0.0" with no label. A Version is owned
// by a single caller at a time; no internal synchronization is provided.
type Version struct {
	major int64
	minor int64
	patch int64

	// loose is the inverse of strict mode so the zero value parses and
	// renders without a "v" prefix.
	loose bool

	label string
}

// New creates a strict, unlabeled Version from explicit components.
// Each component must be non-negative and within MaxSafeComponent.
func New(major, minor, patch int64) (*Version, error) {
	return NewWithLabel(major, minor, patch, true, "")
}

// NewWithLabel creates a Version from explicit components, strictness, and
// label. Strictness is taken literally as given; there is no string to infer
// it from. The label passes through the same validation as SetLabel.
func NewWithLabel(major, minor, patch int64, strict bool, label string) (*Version, error) {
	for _, c := range []int64{major, minor, patch} {
		if err := checkComponent(c); err != nil {
			return nil, err
		}
	}

	v := &Version{
		major: major,
		minor: minor,
		patch: patch,
		loose: !strict,
	}
	if _, err := v.SetLabel(label); err != nil {
		return nil, err
	}
	return v, nil
}

// Parse constructs a Version from its string form. Strictness is inferred
// from the input: a leading "v" yields a loose instance, its absence a
// strict one. See SetVersion for the accepted grammar.
func Parse(s string) (*Version, error) {
	v := &Version{}
	if _, err := v.SetVersion(s); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseStrict constructs a Version with the given strictness applied before
// parsing. The hint is then overridden by the strictness SetVersion infers
// from the input string, so the outcome for any parseable input is identical
// to Parse. The entry point exists for callers that configure strictness up
// front; the override is documented behavior, not a caller-controllable
// escape hatch.
func ParseStrict(s string, strict bool) (*Version, error) {
	v := &Version{}
	v.SetStrict(strict)
	if _, err := v.SetVersion(s); err != nil {
		return nil, err
	}
	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use Parse and handle errors explicitly.
func MustParse(s string) *Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// Major returns the major component.
func (v *Version) Major() int64 { return v.major }

// Minor returns the minor component.
func (v *Version) Minor() int64 { return v.minor }

// Patch returns the patch component.
func (v *Version) Patch() int64 { return v.patch }

// Label returns the pre-release label, or "" when none is set.
func (v *Version) Label() string { return v.label }

// Strict reports whether the Version is in strict mode, i.e. renders and
// parses without a leading "v" prefix.
func (v *Version) Strict() bool { return !v.loose }

// String renders the canonical string form:
// {prefix}{major}.{minor}.{patch}{-label}, where prefix is "v" in loose mode
// and the label suffix is present only when a label is set. The output is
// the exact inverse of SetVersion: re-parsing it yields an equal Version.
func (v *Version) String() string {
	prefix := ""
	if v.loose {
		prefix = "v"
	}
	suffix := ""
	if v.label != "" {
		suffix = "-" + v.label
	}
	return fmt.Sprintf("%s%d.%d.%d%s", prefix, v.major, v.minor, v.patch, suffix)
}
