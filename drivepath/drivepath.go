// Package drivepath maps Google Drive files to element paths.
//
// A Resolver finds the files denoted by an element path below a root folder,
// computes the element path of a file from its parents, walks folder trees,
// and relativizes between two files.
package drivepath

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"slices"

	"github.com/Jumpaku/go-elempath"
	"github.com/Jumpaku/go-elempath/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
)

type Resolver struct {
	service *drive.Service
	factory *elempath.Factory
	logger  logrus.FieldLogger
}

type Option func(*Resolver)

// WithLogger sets the logger receiving debug entries for each Drive lookup.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a new Resolver with the given drive.Service.
// Paths returned by the Resolver are created by factory.
func New(service *drive.Service, factory *elempath.Factory, opts ...Option) *Resolver {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	r := &Resolver{service: service, factory: factory, logger: discard}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PathOf returns the absolute path from the root of the drive to the file with the given fileID.
func (r *Resolver) PathOf(ctx context.Context, fileID FileID) (path elempath.Path, err error) {
	parts := []string{}
	currentID := string(fileID)
	for {
		f, found, err := r.findByID(ctx, currentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get file info: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("file not found: %s: %w", currentID, errors.ErrNotFound)
		}
		if len(f.Parents) == 0 {
			break
		}
		if len(f.Parents) > 1 {
			return nil, fmt.Errorf("failed to resolve path of '%s' with multiple parents: %w", currentID, errors.ErrMultiParentsNotSupported)
		}
		parts = append(parts, f.Name)
		currentID = f.Parents[0]
	}
	slices.Reverse(parts)
	return r.factory.NewAbsolutePath(parts...), nil
}

// Find resolves path from the folder rootID and returns all files and folders that match it.
// Both absolute and relative paths are resolved from rootID.
// Segments equal to the parent or current marker of the factory are rejected with ErrInvalidPath,
// so files with such names cannot be found by path.
func (r *Resolver) Find(ctx context.Context, rootID FileID, path elempath.Path) (info []FileInfo, err error) {
	parts, err := r.splitPath(path)
	if err != nil {
		return nil, fmt.Errorf("path validation failed: %w", err)
	}
	file, found, err := r.findByID(ctx, string(rootID))
	if err != nil {
		return nil, fmt.Errorf("failed to find root directory: %w", err)
	}
	if !found {
		return nil, nil
	}
	err = r.dfsFind(ctx, file, 0, parts, func(i FileInfo) error {
		info = append(info, i)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	return info, nil
}

// Walk walks the file tree rooted at rootID, calling f for each file or folder in the tree, including rootID itself.
// The path passed to f is the absolute path of the file when rootID is taken as the root.
// Each Drive file name becomes exactly one segment, even if it contains '/',
// so String of such a path does not parse back to the same path.
func (r *Resolver) Walk(ctx context.Context, rootID FileID, f func(elempath.Path, FileInfo) error) (err error) {
	file, found, err := r.findByID(ctx, string(rootID))
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}
	if !found {
		return fmt.Errorf("file not found: %s: %w", rootID, errors.ErrNotFound)
	}
	return r.walk(ctx, r.factory.Root(), file, f)
}

// Rel returns the relative path that walks from the file fromID to the file toID.
func (r *Resolver) Rel(ctx context.Context, fromID, toID FileID) (rel *elempath.RelativePath, err error) {
	from, err := r.PathOf(ctx, fromID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path of '%s': %w", fromID, err)
	}
	to, err := r.PathOf(ctx, toID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path of '%s': %w", toID, err)
	}
	return from.Relativize(to)
}

func (r *Resolver) splitPath(path elempath.Path) (parts []string, err error) {
	if path.Factory() != r.factory {
		return nil, fmt.Errorf("path '%s' of another factory: %w", path, errors.ErrProviderMismatch)
	}
	it := path.Iterator()
	for {
		segment, err := it.Next()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		name := segment.LastSegment()
		if name == r.factory.ParentMarker() || name == r.factory.CurrentMarker() {
			return nil, fmt.Errorf("relative path component '%s' is not allowed in '%s': %w", name, path, errors.ErrInvalidPath)
		}
		parts = append(parts, name)
	}
	return parts, nil
}

func (r *Resolver) dfsFind(ctx context.Context, file *drive.File, partIndex int, parts []string, onPathMatch func(FileInfo) error) (err error) {
	if partIndex == len(parts) {
		return onPathMatch(newFileInfo(file))
	}
	if file.MimeType != mimeTypeGoogleAppFolder {
		return nil
	}
	files, err := r.findAllByNameIn(ctx, file.Id, parts[partIndex])
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	for _, file := range files {
		if err := r.dfsFind(ctx, file, partIndex+1, parts, onPathMatch); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) walk(ctx context.Context, path elempath.Path, file *drive.File, f func(elempath.Path, FileInfo) error) (err error) {
	if err := f(path, newFileInfo(file)); err != nil {
		return err
	}
	if file.MimeType != mimeTypeGoogleAppFolder {
		return nil
	}
	files, err := r.findAllIn(ctx, file.Id)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	for _, child := range files {
		if err := r.walk(ctx, path.Resolve(r.factory.NewRelativePath(child.Name)), child, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadDir lists the files and folders directly in the folder with the given fileID.
func (r *Resolver) ReadDir(ctx context.Context, fileID FileID) (children []FileInfo, err error) {
	files, err := r.findAllIn(ctx, string(fileID))
	if err != nil {
		return nil, fmt.Errorf("failed to list directory contents: %w", err)
	}
	return lo.Map(files, func(f *drive.File, _ int) FileInfo { return newFileInfo(f) }), nil
}
