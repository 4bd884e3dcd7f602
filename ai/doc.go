// Package ai provides abstractions for the AI capabilities used in docdex.
//
// This package defines interfaces for summarization and relevant-sentence
// extraction. It follows the dependency inversion principle, allowing the
// indexing pipeline and retriever to depend on abstractions rather than
// concrete implementations.
//
// # Implementation Packages
//
// The ai package includes three implementation sub-packages:
//
//   - ai/openai: network-backed implementation using OpenAI-compatible APIs
//   - ai/rulebased: deterministic, offline fallback summarizer
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Summarization is composed as an ordered strategy list: the pipeline tries
// each Summarizer in turn and stops at the first success. The rule-based
// summarizer never fails and always terminates the list, so a transient
// failure of the network-backed capability degrades locally and is never
// surfaced to callers.
//
// Which variant backs a component is selected explicitly at construction.
// Nothing in this package inspects the environment.
package ai
