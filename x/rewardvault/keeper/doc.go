// Package keeper implements the reward vault module keeper.
//
// The reward vault holds donated collectibles in module custody and hands
// them out one at a time as randomly drawn rewards. Donations append to an
// immutable arena; a dense index set over the unclaimed records gives uniform
// random selection and removal in constant time via swap-with-last.
//
// Distributed collectibles are only marked claimed, never deleted, so the
// invariant claimed + unclaimed == total donated holds across the vault's
// whole history.
package keeper
