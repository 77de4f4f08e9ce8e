// Package http builds HTTP/1.1 requests and frames raw responses.
//
// It deliberately covers only what a single request/response exchange over
// a closed connection needs: request serialization and splitting the
// response into its header section and body.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110
//
// - https://datatracker.ietf.org/doc/html/rfc9112
package http
