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
	"strings"
)

// Every mutator returns the receiver so calls chain on the same instance,
// and validates its input before applying any change: on error the Version
// is exactly as it was.

// SetMajor sets the major component. Other fields are untouched.
func (v *Version) SetMajor(n int64) (*Version, error) {
	if err := checkComponent(n); err != nil {
		return v, err
	}
	v.major = n
	return v, nil
}

// SetMinor sets the minor component. Other fields are untouched.
func (v *Version) SetMinor(n int64) (*Version, error) {
	if err := checkComponent(n); err != nil {
		return v, err
	}
	v.minor = n
	return v, nil
}

// SetPatch sets the patch component. Other fields are untouched.
func (v *Version) SetPatch(n int64) (*Version, error) {
	if err := checkComponent(n); err != nil {
		return v, err
	}
	v.patch = n
	return v, nil
}

// IncreaseMajor adds n to the major component and resets minor and patch to
// zero: a major bump invalidates the finer-grained history. n must be a
// non-negative safe integer and the sum must stay within MaxSafeComponent.
func (v *Version) IncreaseMajor(n int64) (*Version, error) {
	if err := v.checkIncrease(v.major, n); err != nil {
		return v, err
	}
	v.major += n
	v.minor = 0
	v.patch = 0
	return v, nil
}

// IncreaseMinor adds n to the minor component and resets patch to zero.
func (v *Version) IncreaseMinor(n int64) (*Version, error) {
	if err := v.checkIncrease(v.minor, n); err != nil {
		return v, err
	}
	v.minor += n
	v.patch = 0
	return v, nil
}

// IncreasePatch adds n to the patch component. Nothing is reset.
func (v *Version) IncreasePatch(n int64) (*Version, error) {
	if err := v.checkIncrease(v.patch, n); err != nil {
		return v, err
	}
	v.patch += n
	return v, nil
}

// BumpMajor increases the major component by one.
func (v *Version) BumpMajor() (*Version, error) { return v.IncreaseMajor(1) }

// BumpMinor increases the minor component by one.
func (v *Version) BumpMinor() (*Version, error) { return v.IncreaseMinor(1) }

// BumpPatch increases the patch component by one.
func (v *Version) BumpPatch() (*Version, error) { return v.IncreasePatch(1) }

// DecreaseMajor subtracts n from the major component and resets minor and
// patch to zero. Fails with ErrNegativeResult when the subtraction would go
// below zero; the subtraction never clamps.
func (v *Version) DecreaseMajor(n int64) (*Version, error) {
	if err := checkComponent(n); err != nil {
		return v, err
	}
	m, err := decreaseComponent(v.major, n)
	if err != nil {
		return v, err
	}
	v.major = m
	v.minor = 0
	v.patch = 0
	return v, nil
}

// DecreaseMinor subtracts n from the minor component and resets patch to zero.
func (v *Version) DecreaseMinor(n int64) (*Version, error) {
	if err := checkComponent(n); err != nil {
		return v, err
	}
	m, err := decreaseComponent(v.minor, n)
	if err != nil {
		return v, err
	}
	v.minor = m
	v.patch = 0
	return v, nil
}

// DecreasePatch subtracts n from the patch component. Nothing is reset.
func (v *Version) DecreasePatch(n int64) (*Version, error) {
	if err := checkComponent(n); err != nil {
		return v, err
	}
	m, err := decreaseComponent(v.patch, n)
	if err != nil {
		return v, err
	}
	v.patch = m
	return v, nil
}

// SetLabel sets the pre-release label. An empty string clears the label.
// Non-empty text is trimmed of surrounding whitespace, a single leading "-"
// is stripped, and the remainder is validated against the label grammar
// (dot-separated groups of alphanumerics and hyphens). The stored label
// never begins with "-", so String output always re-parses to the same
// value.
func (v *Version) SetLabel(label string) (*Version, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		v.label = ""
		return v, nil
	}
	trimmed := strings.TrimPrefix(label, "-")
	if strings.HasPrefix(trimmed, "-") || !labelPattern.MatchString(trimmed) {
		return v, fmt.Errorf("%w: malformed label %q", ErrInvalidArgument, label)
	}
	v.label = trimmed
	return v, nil
}

// ClearLabel removes the pre-release label.
func (v *Version) ClearLabel() *Version {
	v.label = ""
	return v
}

// SetStrict sets the strictness mode. Existing components and label are not
// re-validated or reformatted; only the "v" prefix handling changes.
func (v *Version) SetStrict(strict bool) *Version {
	v.loose = !strict
	return v
}

// SetVersion replaces the whole value from its string form. The input is
// validated against the loose grammar regardless of current strictness so a
// strict-looking string is never rejected prematurely; strictness is then
// inferred from the presence or absence of the "v" prefix, overriding
// whatever was configured before. The optional "-label" suffix on the patch
// token becomes the label.
func (v *Version) SetVersion(s string) (*Version, error) {
	if !loosePattern.MatchString(s) {
		return v, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	loose := strings.HasPrefix(s, "v")
	parts := strings.SplitN(strings.TrimPrefix(s, "v"), ".", 3)

	patchPart := parts[2]
	label := ""
	if i := strings.IndexByte(patchPart, '-'); i >= 0 {
		label = patchPart[i+1:]
		patchPart = patchPart[:i]
	}

	// Components are parsed before anything is assigned so an oversized
	// component cannot leave the value half-replaced.
	major, err := parseComponent(parts[0])
	if err != nil {
		return v, err
	}
	minor, err := parseComponent(parts[1])
	if err != nil {
		return v, err
	}
	patch, err := parseComponent(patchPart)
	if err != nil {
		return v, err
	}

	v.loose = loose
	v.major = major
	v.minor = minor
	v.patch = patch
	if label == "" {
		v.label = ""
		return v, nil
	}
	return v.SetLabel(label)
}

// Reset restores the value to a strict "0.0.0" with no label. Strictness is
// reset too because "0.0.0" carries no "v" prefix to infer loose mode from.
func (v *Version) Reset() *Version {
	// The literal cannot fail the grammar.
	v, _ = v.SetVersion("0.0.0")
	return v.ClearLabel()
}

// CanIncreaseMajor reports whether the major component can grow by n without
// exceeding MaxSafeComponent. Pure predicate, no mutation.
func (v *Version) CanIncreaseMajor(n int64) bool { return canIncrease(v.major, n) }

// CanIncreaseMinor reports whether the minor component can grow by n.
func (v *Version) CanIncreaseMinor(n int64) bool { return canIncrease(v.minor, n) }

// CanIncreasePatch reports whether the patch component can grow by n.
func (v *Version) CanIncreasePatch(n int64) bool { return canIncrease(v.patch, n) }

// MaxIncreaseMajor returns the largest increment that keeps the major
// component within MaxSafeComponent.
func (v *Version) MaxIncreaseMajor() int64 { return MaxSafeComponent - v.major }

// MaxIncreaseMinor returns the largest increment for the minor component.
func (v *Version) MaxIncreaseMinor() int64 { return MaxSafeComponent - v.minor }

// MaxIncreasePatch returns the largest increment for the patch component.
func (v *Version) MaxIncreasePatch() int64 { return MaxSafeComponent - v.patch }

func canIncrease(current, n int64) bool {
	return n >= 0 && n <= MaxSafeComponent-current
}

func (v *Version) checkIncrease(current, n int64) error {
	if err := checkComponent(n); err != nil {
		return err
	}
	if n > MaxSafeComponent-current {
		return fmt.Errorf("%w: increasing %d by %d exceeds safe-integer ceiling %d",
			ErrInvalidArgument, current, n, MaxSafeComponent)
	}
	return nil
}
