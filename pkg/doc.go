// Package pkg provides the libraries behind permrank, a tool for ranking and
// unranking permutations through Lehmer codes.
//
// # Overview
//
// The pkg directory is organized into a core and supporting packages:
//
//  1. [perm] - Factoradic and Lehmer codecs, permutation rank and unrank,
//     and unranking over arbitrary element pools
//  2. [errors] - Structured errors with machine-readable codes
//  3. [config] - TOML configuration for the CLI
//  4. [observability] - Hooks for tracing codec operations
//  5. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// Every conversion passes through the Lehmer code:
//
//	permutation <-> Lehmer code <-> rank
//	                     |
//	              element arrangement
//
// Ranks are uint64 up to [perm.MaxUint64Size] elements and *big.Int beyond.
//
// # Quick Start
//
//	rank := perm.Index([]int{2, 0, 1})               // 4
//	p := perm.Nth(4, 3)                              // [2 0 1]
//	words := perm.NthOf(3, []string{"a", "b", "c"}) // [b c a]
//
// Strict variants such as [perm.IndexStrict] validate their input and return
// errors carrying a code from [errors].
//
// [perm]: github.com/matzehuels/permrank/pkg/perm
// [errors]: github.com/matzehuels/permrank/pkg/errors
// [config]: github.com/matzehuels/permrank/pkg/config
// [observability]: github.com/matzehuels/permrank/pkg/observability
// [buildinfo]: github.com/matzehuels/permrank/pkg/buildinfo
package pkg
