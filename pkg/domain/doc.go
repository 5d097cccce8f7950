// Package domain contains the core types shared across the fortune service.
// They carry no infrastructure concerns, so the index loader, the HTTP layer
// and the CLI can all depend on them.
package domain
