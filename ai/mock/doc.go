// Package mock provides test doubles for the ai package interfaces.
//
// The mocks return concrete types so tests can inject behavior via the
// function fields and assert on call counts, without reaching any external
// AI service.
package mock
