// Package webshell describes the browser client served next to the API: the
// page routes, the toast defaults, and the caching rules its generated service
// worker applies. It also serves the built client as a single-page app.
package webshell
