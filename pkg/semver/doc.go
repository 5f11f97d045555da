// Package semver provides a mutable semantic-version value with validated
// in-place mutation, three-way comparison, and canonical string formatting.
//
// # Overview
//
// A Version holds three non-negative integer components (major, minor,
// patch), an optional pre-release label, and a strictness mode controlling
// the leading "v" prefix. The accepted grammar is:
//
//	strict:  MAJOR.MINOR.PATCH[-label]
//	loose:  vMAJOR.MINOR.PATCH[-label]
//
// where the label is one or more dot-separated groups of alphanumerics and
// hyphens. Build metadata ("+build"), range constraints ("^1.2.3"), and
// multi-version sorting are out of scope; see Semver for a bridge to a full
// SemVer implementation.
//
// # Usage
//
// Parse a version string:
//
//	v, err := semver.Parse("v1.2.3-alpha")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: v1.2.3-alpha
//
// Mutate in place; every mutator returns the same instance for chaining and
// leaves it untouched on error:
//
//	v, _ := semver.New(1, 5, 7)
//	v.BumpMajor()
//	fmt.Println(v) // Output: 2.0.0
//
// Compare versions:
//
//	r, _ := v.CompareString("1.9.0")
//	if r == semver.Newer {
//	    fmt.Println("upgrade available")
//	}
//
// # Strictness Inference
//
// SetVersion (and therefore Parse and UnmarshalText) infers strictness from
// the input: "v1.2.3" yields a loose instance that renders with the prefix,
// "1.2.3" a strict one that rejects it. The inference overrides any
// previously configured strictness, including the hint given to ParseStrict.
//
// # Mutation Semantics
//
// Increasing a component invalidates the finer-grained history: a major
// increase resets minor and patch to zero, a minor increase resets patch.
// Decreases follow the same reset rules and fail with ErrNegativeResult
// rather than clamping at zero.
//
// # Comparison Semantics
//
// Compare orders by (major, minor, patch) only. Labels are ignored: "1.0.0"
// and "1.0.0-alpha" compare as Current. Full pre-release precedence is
// deliberately not implemented.
//
// # Error Handling
//
// Failures surface synchronously as wrapped sentinel errors:
//
//   - ErrInvalidArgument: value of the wrong domain (negative, above the
//     2^53-1 safe-integer ceiling, malformed label)
//   - ErrInvalidFormat: string fails the version or component grammar
//   - ErrNegativeResult: a decrease would go below zero
//
// Callers that want to avoid the error path can test with IsValid and the
// CanIncrease predicates first.
package semver
