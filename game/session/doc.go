// Package session manages game session lifecycle and storage.
//
// A Manager keeps live sessions in memory under case-insensitive 4-character
// IDs and optionally mirrors them to a SessionPersistence backend. The file
// backend stores each session as a JSON document whose game payload is the
// engine's key/value snapshot, so a saved game survives process restarts.
//
// The manager also wires the engine's end-of-turn snapshot hook into the
// persistence backend, so finished turns are written automatically.
package session
