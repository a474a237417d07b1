// Package domain contains the core domain types of the task service. Value
// objects validate on construction and entities guard their own invariants,
// so the rest of the application can rely on instances always being valid.
// These types are intentionally free of infrastructure concerns so they can
// be shared across packages.
package domain
