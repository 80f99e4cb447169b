// Package gameplay provides the math helpers gameplay code calls every
// frame: rotation smoothing, jump velocity solving and nearest-entity
// search.
//
// All functions are pure. They hold no state and are safe for concurrent
// use, provided the Location methods of the entities passed to FindClosest
// are themselves safe to call concurrently.
package gameplay
