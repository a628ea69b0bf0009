// Package internal contains the SDL plumbing behind the navbug host: window
// and renderer setup, fonts, theming, input translation and texture caching.
// Types and functions in this package are not part of the public API.
package internal
