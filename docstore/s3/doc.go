// Package s3 provides a docstore.Store backed by Amazon S3 using the AWS
// SDK v2 and its managed uploader.
package s3
