package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahmadsvu/stationery-hub-frontend/pkg/httpclient"
)

// Install swaps the shared outbound transport for mt and returns a restore
// function. Always defer the restore:
//
//	defer mt.Install()()
func (mt *MockTransport) Install() func() {
	httpclient.DefaultClient.Transport = mt
	return httpclient.ResetTransport
}

// AssertCalled fails the test when no intercepted request matches.
func (mt *MockTransport) AssertCalled(t *testing.T, method, urlPart string) {
	t.Helper()
	assert.Greater(t, mt.CallCount(method, urlPart), 0,
		"expected at least one %s request matching %q, calls: %v", method, urlPart, mt.Calls())
}

// AssertNotCalled fails the test when any intercepted request matches.
func (mt *MockTransport) AssertNotCalled(t *testing.T, method, urlPart string) {
	t.Helper()
	assert.Equal(t, 0, mt.CallCount(method, urlPart),
		"expected no %s request matching %q, calls: %v", method, urlPart, mt.Calls())
}
