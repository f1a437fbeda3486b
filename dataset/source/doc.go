// Package source fetches dataset snapshots from external storage.
//
// A Source retrieves one encoded snapshot as a byte slice; Load combines a
// fetch with snapshot decoding and validation. Built-in sources cover
// in-memory bytes, local files, MinIO/S3-compatible object storage and
// Amazon S3. RevisionStore tracks which snapshot key is currently published
// for a dataset, backed by DynamoDB with conditional writes so concurrent
// publishers cannot silently overwrite each other.
//
// Remote sources can be wrapped with Throttle to bound fetch rate.
//
// The resolution engine itself performs no I/O; sources exist so callers
// can obtain a dataset at initialization time and hand it to chemref.New.
package source
