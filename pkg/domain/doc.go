// Package domain contains the core records of the travel booking system:
// accounts, hotels and stays, flights, fares, tickets and complaints. The types
// are intentionally free of infrastructure concerns so they can be shared
// across packages. Each record carries the small display helpers (String and
// AbsoluteURL) used by templates.
package domain
