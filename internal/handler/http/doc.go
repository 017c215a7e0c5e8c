// Package http implements the REST transport of the dashcam catalogue.
//
// It wires the chi router, the request handlers for users, videos and
// comments, and the middleware chain: trace ids, access logging, metrics,
// CORS and the API key gate in front of every mutating /{id} endpoint.
// Handlers decode requests into models, delegate to the service layer and
// map returned errors onto HTTP statuses via statusFromError.
package http
