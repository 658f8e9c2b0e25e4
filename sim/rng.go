package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible simulation run. Two runs
// with the same SimulationKey and identical configuration MUST produce
// identical event orderings.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// RNG subsystem names.
const (
	// SubsystemGenerator is the RNG subsystem for part-generator pacing.
	// Uses the master seed directly.
	SubsystemGenerator = "generator"
)

// SubsystemMachine returns the subsystem name for machine N, for future
// per-machine stochastic processing times.
func SubsystemMachine(id int) string {
	return fmt.Sprintf("machine_%d", id)
}

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, so adding randomness to one component never perturbs the draw
// sequence of another.
//
// Derivation: SubsystemGenerator uses the master seed directly; every other
// subsystem uses masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. The single-current-process invariant of
// the kernel is what makes this safe to share.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same name always returns the same *rand.Rand instance.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derivedSeed := int64(p.key)
	if name != SubsystemGenerator {
		derivedSeed ^= fnv1a64(name)
	}
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// Uniform samples uniformly from [Lower, Upper).
type Uniform struct {
	Lower, Upper float64
	rng          *rand.Rand
}

// NewUniform creates a uniform distribution over [lower, upper) drawing
// from the given RNG.
func NewUniform(lower, upper float64, rng *rand.Rand) Uniform {
	return Uniform{Lower: lower, Upper: upper, rng: rng}
}

// Sample draws one value.
func (u Uniform) Sample() float64 {
	return u.Lower + u.rng.Float64()*(u.Upper-u.Lower)
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
