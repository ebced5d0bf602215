// Package stats holds process-wide counters incremented by the geometry
// primitives on every AABB-vs-frustum and AABB-vs-ray test. It exists so
// that tests can bound the amount of work a query does; the demo CLI's query
// commands also print them.
package stats

import "sync/atomic"

var (
	frustumVsAabb uint64
	rayVsAabb     uint64
)

// IncFrustumVsAabb records one AABB-vs-frustum classification test.
func IncFrustumVsAabb() {
	atomic.AddUint64(&frustumVsAabb, 1)
}

// IncRayVsAabb records one AABB-vs-ray intersection test.
func IncRayVsAabb() {
	atomic.AddUint64(&rayVsAabb, 1)
}

// FrustumVsAabb returns the number of AABB-vs-frustum tests since the last Reset.
func FrustumVsAabb() uint64 {
	return atomic.LoadUint64(&frustumVsAabb)
}

// RayVsAabb returns the number of AABB-vs-ray tests since the last Reset.
func RayVsAabb() uint64 {
	return atomic.LoadUint64(&rayVsAabb)
}

// Reset zeroes both counters.
func Reset() {
	atomic.StoreUint64(&frustumVsAabb, 0)
	atomic.StoreUint64(&rayVsAabb, 0)
}
