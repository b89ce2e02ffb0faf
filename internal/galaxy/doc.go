// Package galaxy generates and integrates the particles of a two-galaxy
// collision.
//
// Particles are plain data. Generation and integration are free functions
// over slices of [Particle]:
//
//   - [Generate]: one logarithmic spiral galaxy around a center
//   - [Collide]: two galaxies drifting toward each other
//   - [Advance]: one semi-implicit Euler tick for a single particle
//   - [Step]: [Advance] over a whole collection, in order
//
// Each particle is attracted only to its own anchor (the center of the galaxy
// it was born in). There is no particle-particle or galaxy-galaxy gravity; the
// collision comes from the opposite drift velocities assigned at generation.
//
// # Randomness
//
// All sampling goes through a [Source], so a seeded source (or a scripted one
// in tests) makes generation reproducible.
package galaxy
