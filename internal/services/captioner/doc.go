// Package captioner wraps the external caption generation tool.
//
// The client builds the tool's command line from the dataset location and
// captioner type, and enforces the collaborator contract: a successful run
// must leave a non-empty captions artifact at the requested path.
package captioner
