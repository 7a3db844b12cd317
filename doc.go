/*
Go IA Uploader is a small Internet Archive uploader tool.

It recursively uploads the contents of a local folder to a single archive.org
item, preserving the folder structure as the item's file listing. Item metadata
(identifier, title, creator, media type and a few optional fields) is collected
from command line flags; whatever the flags leave out is asked for
interactively before the upload starts.

The tool stays deliberately thin: it walks the tree, builds the metadata record
and hands the files to the archive's S3-compatible API one at a time. Transfer,
retries and deduplication of files the item already holds are the service's
business, not ours.

Credentials come from --access-key/--secret-key, the IA_ACCESS_KEY and
IA_SECRET_KEY environment variables (a .env file works too), or the standard
shared credentials chain. The tool never stores them.
*/
package main
