// Package config is the spf13/viper-backed loader for place.Options,
// letting a deployment override separationFactor, testFactor, iSteps,
// dSepMaxFactor, and minMag from a config file or environment variables
// without recompiling, following the teacher pack's viper/cobra wiring
// (inmaputil.Cfg) scaled down to this module's one tunable struct.
//
// What:
//
//   - Load(path): reads path (if non-empty) plus environment variables
//     prefixed STREAMLINE_, falling back to place.DefaultOptions() for
//     anything unset.
//
// Why: spec.md §4.7's constants are reasonable defaults, not universal
// ones — a deployment tuning for a denser or sparser field needs to
// change them without a rebuild.
package config
