// Package acl is the anti-corruption layer between downstream HTTP APIs and
// the domain. Adapters here own the external DTOs, decode them, and translate
// every failure into a domain error so nothing about the wire format leaks
// past this package.
//
// The quote-of-the-day adapter maps failures onto [domain.FetchError]:
//
//   - no response, timeout, open circuit -> transportOffline
//   - unparsable request URL             -> invalidURL
//   - any status other than 200          -> invalidStatusCode(code)
//   - undecodable 200 body               -> invalidData
//   - anything else                      -> unknown(description)
package acl
