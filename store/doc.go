// Package store persists transcript chunks and source summaries in a
// single similarity-searchable index.
//
// Both content classes live in one embedding space so the same index can
// answer "find supporting passages" and "does a summary already exist for
// this source". Every query is therefore scoped by content type; the
// alternate source keys (id, title) are OR-combined on top of the index's
// AND-only metadata filters by running one search per key and merging the
// hits.
//
// The index is an embedded HNSW structure snapshotted to one file per
// collection, surviving process restarts.
package store
