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

	mmsemver "github.com/Masterminds/semver/v3"
)

// Semver converts v to a github.com/Masterminds/semver Version for callers
// that need full SemVer machinery this package deliberately leaves out:
// pre-release precedence in ordering, build metadata, and range constraints.
// The conversion goes through the canonical string form; the label becomes
// the pre-release segment.
func (v *Version) Semver() (*mmsemver.Version, error) {
	sv, err := mmsemver.NewVersion(v.String())
	if err != nil {
		return nil, fmt.Errorf("converting %q: %w", v.String(), err)
	}
	return sv, nil
}
