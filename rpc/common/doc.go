// Package common contains the building blocks shared by the transport, client and
// server packages.
//
// The package focuses on:
//   - The configuration of the remote store connection (ServerConfig)
//   - Sentinel errors for connection, authentication, transport and log failures
//   - Logging through dragonboats logger facade with a custom formatter
//   - Process wide metrics (VictoriaMetrics) for dials and commands
//
// Key Components:
//
//   - ServerConfig: Connection kind, network target or socket path, credentials and
//     command log settings. DefaultServerConfig returns the values installed at process start.
//
//   - Loggers: InitLoggers installs the formatter and sets the level of the
//     rudf/client, rudf/transport and rudf/server loggers.
//
//   - Metrics: IncDial, IncCommand, IncCommandFailure and ObserveCommand feed the
//     counters and histograms exposed by WriteMetrics.
package common
