package elempathmust

import (
	"context"

	"github.com/Jumpaku/go-elempath"
	"github.com/Jumpaku/go-elempath/drivepath"
	"google.golang.org/api/drive/v3"
)

// Resolver maps Google Drive files to element paths.
// It wraps a drivepath.Resolver.
//
// All methods of Resolver panic on error instead of returning an error value.
type Resolver struct {
	resolver *drivepath.Resolver
}

// NewResolver creates a new Resolver with the given drive.Service.
// The service should be properly authenticated before being passed to this function.
// Paths returned by the Resolver are created by factory.
func NewResolver(service *drive.Service, factory *elempath.Factory, opts ...drivepath.Option) *Resolver {
	return &Resolver{resolver: drivepath.New(service, factory, opts...)}
}

// PathOf returns the absolute path from the root of the drive to the file with the given fileID.
//
// It panics if the file does not exist (the underlying error would be ErrNotFound)
// or if the file or one of its ancestors has multiple parents
// (the underlying error would be ErrMultiParentsNotSupported).
func (r *Resolver) PathOf(ctx context.Context, fileID drivepath.FileID) (path elempath.Path) {
	return must1(r.resolver.PathOf(ctx, fileID))
}

// Find resolves path from the folder rootID and returns the FileInfo of all files and folders that match it.
// Returns nil if rootID does not exist.
//
// It panics if the path contains "." or ".." segments (the underlying error would be ErrInvalidPath)
// or if querying Drive fails.
func (r *Resolver) Find(ctx context.Context, rootID drivepath.FileID, path elempath.Path) (info []drivepath.FileInfo) {
	return must1(r.resolver.Find(ctx, rootID, path))
}

// Walk traverses the file tree rooted at rootID.
// For each file or folder (including the root), it calls the provided function with
// its absolute path taking rootID as the root and its FileInfo.
//
// It panics if traversal fails or if the callback function returns an error.
func (r *Resolver) Walk(ctx context.Context, rootID drivepath.FileID, f func(elempath.Path, drivepath.FileInfo) error) {
	must0(r.resolver.Walk(ctx, rootID, f))
}

// Rel returns the relative path that walks from the file fromID to the file toID.
//
// It panics if the path of either file cannot be resolved.
func (r *Resolver) Rel(ctx context.Context, fromID, toID drivepath.FileID) (rel *elempath.RelativePath) {
	return must1(r.resolver.Rel(ctx, fromID, toID))
}

// ReadDir lists the files and folders directly in the folder with the given fileID.
//
// It panics if listing the folder fails.
func (r *Resolver) ReadDir(ctx context.Context, fileID drivepath.FileID) (children []drivepath.FileInfo) {
	return must1(r.resolver.ReadDir(ctx, fileID))
}
