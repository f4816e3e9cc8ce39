// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline fakes in individual test files, tests import
// the mocks here. Every mock has function fields that override its default
// behavior and records its calls for verification.
//
// Usage:
//
//	import "github.com/phrazzld/creatortune-gateway/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    invoker := &mocks.MockInvoker{Response: `{"reply": "ok"}`}
//	    connector := &mocks.MockConnector{Invoker: invoker}
//
//	    // Use the connector in your test...
//	}
package mocks
