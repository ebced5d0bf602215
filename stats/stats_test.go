package stats

import "testing"

func TestResetAndCount(t *testing.T) {
	Reset()
	if got := FrustumVsAabb(); got != 0 {
		t.Fatalf("FrustumVsAabb() = %d, want 0", got)
	}
	if got := RayVsAabb(); got != 0 {
		t.Fatalf("RayVsAabb() = %d, want 0", got)
	}

	IncFrustumVsAabb()
	IncFrustumVsAabb()
	IncRayVsAabb()

	if got := FrustumVsAabb(); got != 2 {
		t.Fatalf("FrustumVsAabb() = %d, want 2", got)
	}
	if got := RayVsAabb(); got != 1 {
		t.Fatalf("RayVsAabb() = %d, want 1", got)
	}

	Reset()
	if got := FrustumVsAabb(); got != 0 {
		t.Fatalf("FrustumVsAabb() after Reset = %d, want 0", got)
	}
	if got := RayVsAabb(); got != 0 {
		t.Fatalf("RayVsAabb() after Reset = %d, want 0", got)
	}
}
