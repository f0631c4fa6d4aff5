// Package prefix implements the prefix manager of spec §4.6 and §3:
// it owns the ordered prefix P, the per-level traversal/orbit/seed-min
// arena, and per-level generation counters, and implements
// expand_prefix — appending one vertex to P and building that level's
// traversal and orbit indicator.
//
// The arena is a plain growable slice of *Level records rather than a
// linked structure, per spec §9 ("cyclic/shared state -> arena +
// indices"); the search engine, which is the sole mutator of the
// counters and of SeedMin, reaches into a Level directly rather than
// going through setter methods — the same "config struct the caller
// pokes directly" shape as the teacher's builder package uses for its
// builderConfig.
package prefix
