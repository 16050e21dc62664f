package imaging

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrUnknownHandle is returned for handles that were never issued or
	// have already been released.
	ErrUnknownHandle = errors.New("unknown image handle")

	// ErrStoreFull is returned by Put when the store holds its limit.
	ErrStoreFull = errors.New("image store is full")
)

// ImageStore holds edge images on behalf of callers that cannot own Go
// memory directly and refer to them by opaque handle instead.
//
// Each image stays in the store from Put until Release. Handles are random
// UUIDs, so a released handle is never reissued and a stale handle is
// reported as ErrUnknownHandle rather than resolving to another image.
//
// ImageStore is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	store := imaging.NewImageStore(64)
//	handle, err := store.Put(edges)
//	if err != nil {
//	    return err
//	}
//	defer store.Release(handle)
type ImageStore struct {
	mu     sync.RWMutex
	limit  int
	images map[string]*Image
}

// NewImageStore creates an empty store. A limit of zero or less means the
// store never refuses an image.
func NewImageStore(limit int) *ImageStore {
	return &ImageStore{
		limit:  limit,
		images: make(map[string]*Image),
	}
}

// Put retains img and returns the handle that refers to it.
func (s *ImageStore) Put(img *Image) (string, error) {
	if img == nil {
		return "", errors.New("cannot store nil image")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limit > 0 && len(s.images) >= s.limit {
		return "", fmt.Errorf("%w: %d images retained, release some first", ErrStoreFull, len(s.images))
	}

	handle := uuid.New().String()
	s.images[handle] = img
	return handle, nil
}

// Get returns the image for handle without removing it.
func (s *ImageStore) Get(handle string) (*Image, error) {
	s.mu.RLock()
	img, ok := s.images[handle]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHandle, handle)
	}
	return img, nil
}

// Release drops the image for handle. Each handle can be released once;
// a second call returns ErrUnknownHandle.
func (s *ImageStore) Release(handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.images[handle]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHandle, handle)
	}
	delete(s.images, handle)
	return nil
}

// Len reports how many images are currently retained.
func (s *ImageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

// Clear releases every retained image.
func (s *ImageStore) Clear() {
	s.mu.Lock()
	s.images = make(map[string]*Image)
	s.mu.Unlock()
}
