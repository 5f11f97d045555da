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

import "fmt"

// Result is the three-way outcome of a version comparison. The numeric
// values match the conventional {-1, 0, 1} comparator contract so legacy
// numeric comparisons keep working.
type Result int

const (
	// Older means the receiver is older than the other version.
	Older Result = -1
	// Current means the two versions are equal.
	Current Result = 0
	// Newer means the receiver is newer than the other version.
	Newer Result = 1
)

// String returns the lowercase name of the result.
func (r Result) String() string {
	switch r {
	case Older:
		return "older"
	case Newer:
		return "newer"
	default:
		return "current"
	}
}

// Compare orders v against other by magnitude over (major, minor, patch) in
// that priority: the first differing component decides. Labels are never
// considered, so two versions differing only by label compare as Current.
// Callers that need full SemVer pre-release precedence should go through
// Semver(). other must not be nil.
func (v *Version) Compare(other *Version) Result {
	if v.major != other.major {
		return order(v.major, other.major)
	}
	if v.minor != other.minor {
		return order(v.minor, other.minor)
	}
	if v.patch != other.patch {
		return order(v.patch, other.patch)
	}
	return Current
}

// CompareString compares v against a version string. The string must match
// the strict grammar (no "v" prefix); it is parsed into a temporary Version
// and compared like Compare. Fails with ErrInvalidFormat otherwise.
func (v *Version) CompareString(s string) (Result, error) {
	if !IsValid(s, true) {
		return Current, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	other, err := Parse(s)
	if err != nil {
		return Current, err
	}
	return v.Compare(other), nil
}

// Equal reports whether v and other have identical components. Like
// Compare, labels and strictness are not considered.
func (v *Version) Equal(other *Version) bool {
	return v.Compare(other) == Current
}

func order(a, b int64) Result {
	if a > b {
		return Newer
	}
	return Older
}
