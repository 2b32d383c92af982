//go:build integration
// +build integration

package integration

// GetTestContext returns the shared test context built by TestMain.
func GetTestContext() *TestContext {
	return testCtx
}
