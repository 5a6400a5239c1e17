// Command streamline is the CLI entrypoint wiring ingest.JSONFileSource
// into place.Driver.Generate and the output package's two encodings,
// following the teacher pack's cobra/viper command style (as seen in the
// inmaputil command set).
package main
