// Package platform wraps permission changes so callers do not need to special
// case Windows, where Unix permission bits do not exist.
package platform
