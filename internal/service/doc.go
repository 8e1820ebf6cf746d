// Package service implements the application layer of Planetarium.
//
// SystemService wraps a domain.SolarSystem for the interactive front end. It
// validates user input the domain does not check (positive
// masses, the kind of body an identifier names), turns silent capacity drops
// into errors the user can read, logs every mutation and publishes events on
// an EventBus.
//
// # Event System
//
// EventBus delivers events synchronously to every handler. Event types cover
// bodies being added and removed, the system being cleared, populated by the
// generator or loaded from a scenario.
package service
