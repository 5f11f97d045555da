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
	"regexp"
	"strconv"
)

// MaxSafeComponent is the largest value a single version component may hold.
// It mirrors the IEEE-754 double safe-integer ceiling (2^53-1) so that
// version strings produced here remain exact in systems that read them into
// double-precision numbers. int64 ranges further; the explicit bound is a
// compatibility behavior, not a structural limit.
const MaxSafeComponent int64 = 1<<53 - 1

var (
	// strictPattern accepts MAJOR.MINOR.PATCH with an optional -label suffix.
	strictPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

	// loosePattern is strictPattern with an optional leading "v".
	loosePattern = regexp.MustCompile(`^v?\d+\.\d+\.\d+(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

	// componentPattern accepts a single standalone numeric component.
	componentPattern = regexp.MustCompile(`^\d+$`)

	// labelPattern accepts one or more dot-separated groups of
	// alphanumerics and hyphens, each group non-empty.
	labelPattern = regexp.MustCompile(`^[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*$`)
)

// IsValid reports whether s matches the version grammar. When strict is true
// a leading "v" prefix is rejected; when false it is allowed. The predicate
// has no side effects and never fails.
func IsValid(s string, strict bool) bool {
	if strict {
		return strictPattern.MatchString(s)
	}
	return loosePattern.MatchString(s)
}

// checkComponent validates a numeric component value: non-negative and
// within the safe-integer ceiling.
func checkComponent(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: component must not be negative, got %d", ErrInvalidArgument, n)
	}
	if n > MaxSafeComponent {
		return fmt.Errorf("%w: component %d exceeds safe-integer ceiling %d", ErrInvalidArgument, n, MaxSafeComponent)
	}
	return nil
}

// parseComponent parses a standalone numeric component string.
func parseComponent(s string) (int64, error) {
	if !componentPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: component %q is not numeric", ErrInvalidFormat, s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Only overflow reaches here; the pattern rules out everything else.
		return 0, fmt.Errorf("%w: component %q exceeds safe-integer ceiling %d", ErrInvalidArgument, s, MaxSafeComponent)
	}
	if err := checkComponent(n); err != nil {
		return 0, err
	}
	return n, nil
}

// decreaseComponent subtracts amount from current. It fails with
// ErrNegativeResult when the subtraction would go below zero.
func decreaseComponent(current, amount int64) (int64, error) {
	if amount > current {
		return 0, fmt.Errorf("%w: cannot decrease %d by %d", ErrNegativeResult, current, amount)
	}
	return current - amount, nil
}
