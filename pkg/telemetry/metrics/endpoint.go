package metrics

// Known endpoints. Any other path is reported as EndpointOther so that
// scanners cannot inflate label cardinality. The metrics route is
// labeled with its configured path.
const (
	EndpointCheck  = "/v1/check"
	EndpointHealth = "/health"
	EndpointReady  = "/ready"
	EndpointOther  = "other"
)

// NormalizeEndpoint maps a request path to a bounded endpoint label.
// metricsPath is the configured exposition route.
func NormalizeEndpoint(path, metricsPath string) string {
	switch path {
	case EndpointCheck, EndpointHealth, EndpointReady, metricsPath:
		return path
	}
	return EndpointOther
}
