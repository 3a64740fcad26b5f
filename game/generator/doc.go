// Package generator builds new game worlds from a balance configuration:
// the city map, resource market, train roster, upgrade shop, and the player
// roster. Generation is driven by a single seeded RNG, so the same config
// and seed always produce the same world.
package generator
