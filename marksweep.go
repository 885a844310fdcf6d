// ABOUTME: Main marksweep package providing version information and package documentation
// ABOUTME: This is the root package for the mark-and-sweep heap library

// Package marksweep provides a small in-process object heap with a
// stop-the-world mark-and-sweep garbage collector. The heap package holds
// the collector itself: tagged objects, an explicit root stack, and an
// adaptive collection threshold. The snapshot package serializes a live
// heap's object graph for inspection.
package marksweep

// Version is the semantic version of the marksweep library
const Version = "0.1.0-dev"
