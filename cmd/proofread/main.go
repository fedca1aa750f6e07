// Proofread is an HTTP service that reports grammar and spelling findings
// for English text.
//
// Usage:
//
//	# Start the server with defaults, config.yaml if present, and the environment
//	proofread run
//
//	# Start with a custom configuration file
//	proofread run --config /etc/proofread/config.yaml
//
//	# Lint a file offline
//	proofread check notes.txt
//
//	# Show version information
//	proofread version
package main

func main() {
	Execute()
}
