// Package config loads and validates Gantry's configuration.
//
// Configuration is read from an optional .gantry.yaml file:
//
//	output:
//	  format: text          # text | json
//	fail_on: medium         # low | medium | high
//	policies:
//	  permissions_set:
//	    enabled: false
//	  no_github_expr_in_run:
//	    severity: medium
//	watch:
//	  debounce_interval: 250ms
//
// Loading applies defaults first, then GANTRY_* environment variable
// overrides (GANTRY_OUTPUT_FORMAT, GANTRY_FAIL_ON,
// GANTRY_WATCH_DEBOUNCE_INTERVAL), then validates the final result.
package config
