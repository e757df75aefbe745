// Package config provides configuration management for netease-rename.
//
// This package handles:
//   - Default values (cache paths of the Linux desktop client)
//   - An optional YAML config file
//   - Environment overrides prefixed with NETEASE_RENAME_, also read
//     from a .env file in the working directory
//   - Command line flags bound on top
//   - Validation of the merged result
//
// # Loading
//
//	settings, err := config.Load("", cmd.Flags())
//	if err != nil {
//	    return err
//	}
//
// # Config File
//
//	dist_path: ~/Music/netease
//	keep_source: true
//	api:
//	  retry_count: 10
//	  retry_delay: 1s
//	playlist:
//	  create: true
//	  format: m3u
//	log:
//	  level: debug
package config
