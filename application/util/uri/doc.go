// Package uri parses the URLs given on the command line.
//
// Components are kept in their escaped form so they can be written to the wire as they were typed.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc3986
package uri
