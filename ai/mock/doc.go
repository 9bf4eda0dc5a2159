// Package mock provides test doubles for the ai package interfaces.
//
// Mocks return concrete types so tests can inject behavior via function
// fields and make assertions via CallCount. All mocks provide sensible
// default behavior when no function is injected.
package mock
