// Package watch re-runs workflow checks when the checked files change.
//
// It wraps fsnotify with debouncing: rapid successive writes (editors
// saving in multiple operations, formatters rewriting files) collapse into
// a single re-check after a quiet period.
package watch
