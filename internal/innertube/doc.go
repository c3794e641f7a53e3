// Package innertube implements the client for the upstream's private JSON
// API: the endpoint catalog, a request builder that mirrors the envelope the
// upstream's own web client sends, and a transport with bounded retry.
//
// The package exposes one method per logical operation on [Client]; each
// returns a [models.ResultPage] or a classified error. Callers never see a
// raw response. Calls are independent and may be issued concurrently; the
// only shared state is the [session.Context], which the transport updates
// atomically when the upstream rotates the visitor token or cookies.
//
// Errors are classified through the sentinels in the shared package:
// [shared.ErrAPIRequest] for transport failures after retries exhaust,
// [shared.ErrAuthRequired] for credential rejections, and
// [shared.ErrSchemaMismatch] when a response's top-level shape is
// unrecognizable. Single dropped items never surface as errors.
package innertube
