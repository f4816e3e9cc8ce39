// Package testutils provides shared fixtures and helpers for tests across
// the codebase.
//
// It contains:
//  1. One valid input per operation (ValidRequests) and image fixtures
//  2. Schema-conforming sample documents for scripting remote responses
//  3. HTTP helpers for exercising the API with httptest servers
//  4. An observed zap logger for asserting on log output
//
// A typical gateway test scripts the remote model with a sample document:
//
//	connector, invoker := mocks.NewMockConnector(testutils.SampleJSON(t, spec.Schema))
//	gw := gateway.New(connector)
//	out, err := gw.Execute(ctx, testutils.ValidRequests()[spec.Kind], "hi")
package testutils
