package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// Benchmarks comparing pointer-slice iteration (what Registry uses)
// against value-slice iteration for the projectile hot loop.

const benchProjectiles = 10_000

func BenchmarkProjectileAdvance_Pointers(b *testing.B) {
	reg := NewRegistry()
	for i := 0; i < benchProjectiles; i++ {
		reg.AddProjectile(NewProjectile(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, OwnerPlayer, 1, 0, 1e9))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range reg.Projectiles {
			p.Advance(1.0 / 60.0)
		}
	}
}

func BenchmarkProjectileAdvance_Values(b *testing.B) {
	projs := make([]Projectile, benchProjectiles)
	for i := range projs {
		projs[i] = *NewProjectile(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, OwnerPlayer, 1, 0, 1e9)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range projs {
			projs[j].Advance(1.0 / 60.0)
		}
	}
}
