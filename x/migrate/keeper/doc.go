// Package keeper implements the migrate module keeper.
//
// The migrate module lets an account commit a fungible asset into a
// yield-bearing custodial position with an external lending pool, enforces a
// cooldown before the position can be withdrawn, and awards a randomly
// selected donated collectible to each depositor using an external randomness
// oracle.
//
// # Core Functionality
//
// Positions: per-account-per-denom records tracking the credited receipt
// balance, the cooldown anchor, the outstanding randomness request and the
// permanent one-reward-per-pair flag.
//
// Migration: MigratePosition escrows the presented asset through an
// AssetNormalizer strategy, deposits the underlying with the lending pool,
// credits the observed receipt delta and issues a randomness request for the
// reward draw.
//
// Claiming: ClaimPosition pays out the receipt balance after the 30-day
// cooldown, clearing the stored balance before any transfer so a reentrant
// call cannot double-withdraw. Claiming never depends on reward state.
//
// Fulfillment: FulfillRandomness is delivered by the authorized oracle
// account, consumes the single-use request route and draws a collectible
// from the reward vault's state at fulfillment time.
//
// # Security
//
// Migrate and claim run under a store-backed non-reentrant lock per
// (account, denom) pair. Fulfillments are authenticated by oracle identity
// and replay-protected by route consumption.
package keeper
