// Package curl is a command line HTTP/1.1 client in the manner of curl.
//
// A run parses the url and builds a request from flags, sends it over a fresh
// connection, reads until the server closes and writes the body out.
// Failures are classified by [KindOf] into curl compatible exit codes.
package curl
