package telemetry

// Stub for OSS builds - hosted telemetry is not part of this edition.
// This provides no-op implementations so the gateway can emit events
// unconditionally.

type Client struct{}

var GlobalClient *Client = nil

func (c *Client) Track(event string, props map[string]interface{}) {}

// TrackScan records an extraction event. No-op unless a client is wired in.
func TrackScan(kind string, latencyMs float64) {
	if GlobalClient == nil {
		return
	}
	GlobalClient.Track("scan", map[string]interface{}{
		"kind":       kind,
		"latency_ms": latencyMs,
	})
}
