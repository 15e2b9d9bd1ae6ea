// Package logging resolves a declarative logging specification into named
// loggers bound to console and file sinks.
//
// It is the routing half of tracekit: no call interception, no telemetry
// export. Consumers call Configure once at startup and obtain thin logger
// handles with GetLogger; handles re-resolve against the current
// configuration on every emit, so a later Configure swap is visible to all
// holders.
package logging
