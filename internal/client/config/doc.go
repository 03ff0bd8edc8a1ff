// Package config loads runtime configuration for the wallet CLI.
//
// Values come from built-in defaults, then an optional JSON file selected
// with -c or -config, then command-line flags:
//
//	-a string   address:port of the wallet gRPC endpoint
//	-i int      online status check interval (seconds)
//	-f string   local SQLite file holding the session
//
// A JSON file looks like:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "database_file": "wallet.db"
//	}
package config
