// Package testutils provides helpers shared by the package tests.
//
// LogCapture is an in-memory slog.Handler for asserting on log output
// without parsing JSON lines. The HTTP helpers start httptest servers with
// automatic cleanup and assert on the JSON error envelope returned by the
// API:
//
//	server := testutils.CreateTestServer(t, router)
//	resp := testutils.PostJSON(t, server, "/generate-cards", body)
//	testutils.AssertErrorResponse(t, resp, http.StatusBadRequest, "Content cannot be empty")
//
// Nothing here imports application packages, so any package's internal
// tests can use it.
package testutils
