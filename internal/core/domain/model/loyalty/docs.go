// Package loyalty contains the loyalty-program aggregate.
//
// Each customer has one Account holding a points balance, cumulative spend,
// a derived tier and an append-only points history. Every balance mutation
// appends an Entry, so the balance always equals the running sum of the
// history. Program constants (earn rate, point value, redemption minimum,
// tier thresholds and bonuses, referral bonus) live in Config and are
// injected at construction, never read from package-level state.
package loyalty
