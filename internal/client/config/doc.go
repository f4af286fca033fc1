// Package config loads runtime configuration for the users CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with USERSVC_CLI_ (ADDR, TIMEOUT, SESSION_FILE).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   address:port of the users service
//	-t int      request timeout (seconds)
//	-s string   session database file
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "session_file": ".usersvc/session.db"
//	}
package config
