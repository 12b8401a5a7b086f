// ABOUTME: Main memscope package providing version information and package documentation
// ABOUTME: This is the root package for the memory snapshot analysis library

// Package memscope provides analysis engines for captured memory snapshots.
// It includes a hierarchical tree comparison engine for diffing two
// snapshots and a reference graph walker that builds "what keeps this
// object alive" trees with cycle detection and GC-root classification.
package memscope

// Version is the semantic version of the memscope library
const Version = "0.1.0-dev"
