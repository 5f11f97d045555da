// Package cli implements the command-line interface for the versctl tool.
//
// # Overview
//
// versctl inspects, validates, and manipulates semantic version strings of
// the form MAJOR.MINOR.PATCH[-label], optionally prefixed by "v". It is a
// thin packaging of the pkg/semver library for shell pipelines and CI.
//
// # Commands
//
// check - validate a version string:
//
//	versctl check 1.2.3 [--loose]
//
// Exits non-zero when the string does not match the grammar, so it gates CI
// steps directly.
//
// parse - break a version into components:
//
//	versctl parse [--format yaml|json|table] v1.2.3-alpha.1
//
// bump - increase a component:
//
//	versctl bump major|minor|patch VERSION [--count N] [--label L]
//
// A major bump resets minor and patch; a minor bump resets patch.
//
// compare - order two versions:
//
//	versctl compare 1.2.3 1.2.4
//
// Reports "newer", "older", or "current" for the left argument. Labels are
// not considered.
//
// image - read the version carried by a container image tag:
//
//	versctl image nvcr.io/nvidia/gpu-operator:v25.3.0
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    Log level: debug, info, warn, error (default: info)
package cli
