// Package domain models a small hierarchical universe: one star per solar
// system, the planets orbiting it and the moons orbiting each planet.
//
// # Bodies
//
// Body is a closed set of three variants. Star is the root of a system and
// owns its planets; Planet owns its moons; Moon is a leaf. Children hold a
// back reference to their parent which is cleared when they are removed, so a
// removed body reports a nil Parent and is no longer reachable from the system.
//
// Every body has an identifier built from its ancestors (S1, S1P2, S1P2M3).
// Sequence numbers are owned by the parent and only ever grow, so an
// identifier is never handed out twice within a system.
//
// # Queries
//
// SolarSystem answers lookups by identifier, center of mass and total mass,
// collision detection and paths between bodies. Expected failures are
// returned as errors matching ErrNotFound or ErrDifferentSystem.
//
// # Several systems
//
// NewSolarSystem always creates star S1 and suits a single system, which is
// what the interactive session drives. Universe is the entry point when
// several systems coexist: it numbers their stars S1, S2, ... and resolves
// identifiers across all of them. A path between bodies of two systems fails
// with ErrDifferentSystem.
//
// The domain has no locking; a SolarSystem is meant to be driven by a single
// session at a time.
package domain
