// Package submission delivers validated application snapshots to the outside
// world. A Sink receives each application.Submission exactly once, after the
// form passed submission validation. LogSink mirrors the console output of a
// local run, HTTPSink posts to the intake endpoint described by the embedded
// OpenAPI contract, and the encoders serialise snapshots as JSON,
// form-urlencoded, or plain text.
package submission
