// Package connectors holds the clients that speak to external profile
// sources. Each connector implements the search and export driven ports
// for one source; voyager is currently the only one.
package connectors
