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

import "errors"

// Error types for version validation and mutation failures.
// Every mutator checks its input before touching any state, so a Version
// is always left unmodified when one of these is returned.
var (
	// ErrInvalidArgument indicates a supplied value is out of domain:
	// a negative component, a component above MaxSafeComponent, or a
	// malformed label.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFormat indicates a string failed the version or
	// component grammar.
	ErrInvalidFormat = errors.New("invalid version format")

	// ErrNegativeResult indicates a decrease operation would bring a
	// component below zero. Decreases never clamp silently.
	ErrNegativeResult = errors.New("result would be negative")
)
