package api

// Exports for testing. These allow black-box tests to inject dependencies
// without widening the public API.

// WithHTTPClient injects a fake HTTP client in tests.
var WithHTTPClient = withHTTPClient
