// Package progress turns a target and its logged records into a progress ratio.
//
// Ratios are current value divided by target value and are never clamped:
// overachieved targets report more than 1.0 and negative values report less
// than 0. Clamping is a presentation concern left to the renderers.
package progress
