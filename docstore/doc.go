// Package docstore persists exported documents behind a small Store
// interface.
//
// Backends: MemoryStore for tests, LocalStore for the local file system,
// and S3-compatible object stores under the minio and s3 subpackages.
// CompressingStore and CachingStore wrap any backend to add transparent
// compression and read-through caching.
package docstore
