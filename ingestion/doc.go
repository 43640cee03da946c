// Package ingestion turns a resolved source into persisted, queryable
// content.
//
// One ingestion acquires the transcript, splits it at two granularities
// (coarse units for summarization, fine units for retrieval), asks the
// summarizer for one consolidated summary and persists everything in a
// single batch with the summary tagged as such. A source that already has
// a summary short-circuits: the stored summary comes back without any
// re-acquisition or re-embedding.
package ingestion
