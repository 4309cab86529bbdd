package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"openhiring/internal/config"
	"openhiring/internal/logging"
)

// Kind selects the allow-list, size ceiling and destination directory
// for an upload.
type Kind string

const (
	KindLogo   Kind = "logo"
	KindResume Kind = "resume"
)

// Rejection reasons returned inside *Error.
const (
	ReasonMissing      = "no file provided"
	ReasonBadType      = "file type not allowed"
	ReasonFileTooLarge = "file exceeds the size limit"
)

// Error is a typed upload rejection. Validation failures never touch
// the filesystem.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s upload rejected: %s", e.Kind, e.Reason)
}

// IsRejection reports whether err is an upload validation rejection, as
// opposed to a write failure.
func IsRejection(err error) bool {
	_, ok := err.(*Error)
	return ok
}

// Input describes a candidate file as received from a multipart form.
type Input struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type rule struct {
	dir          string
	maxSize      int64
	allowedTypes []string
}

// Storage validates and persists uploaded assets on the local
// filesystem, one subdirectory per kind.
type Storage struct {
	rules   map[Kind]rule
	baseURL string
	logger  logging.Logger
}

// NewStorage builds the upload storage from configuration.
func NewStorage(cfg *config.Config) *Storage {
	return &Storage{
		rules: map[Kind]rule{
			KindLogo: {
				dir:          cfg.Uploads.LogoDir,
				maxSize:      cfg.Uploads.MaxLogoSize,
				allowedTypes: []string{"image/jpeg", "image/png"},
			},
			KindResume: {
				dir:          cfg.Uploads.ResumeDir,
				maxSize:      cfg.Uploads.MaxResumeSize,
				allowedTypes: []string{
					"application/pdf",
					"application/msword",
					"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				},
			},
		},
		baseURL: strings.TrimRight(cfg.Site.BaseURL, "/"),
		logger:  logging.GetGlobalLogger(),
	}
}

// Save validates the input against the kind's rules and, on acceptance,
// writes it under a generated collision-resistant filename, creating
// the destination directory if absent. A rejected or failed upload
// leaves no file behind.
func (s *Storage) Save(in Input, kind Kind) (string, error) {
	r, ok := s.rules[kind]
	if !ok {
		return "", fmt.Errorf("unknown upload kind: %s", kind)
	}

	if in.Content == nil || in.Filename == "" {
		return "", &Error{Kind: kind, Reason: ReasonMissing}
	}
	if !allowed(r.allowedTypes, in.ContentType) {
		return "", &Error{Kind: kind, Reason: ReasonBadType}
	}
	if in.Size > r.maxSize {
		return "", &Error{Kind: kind, Reason: ReasonFileTooLarge}
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.New().String() + extension(in.Filename)
	target := filepath.Join(r.dir, filename)

	// Write to a temp file in the same directory and rename, so a
	// failed write never leaves a partial file at the final path.
	tmp, err := os.CreateTemp(r.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	written, err := io.Copy(tmp, io.LimitReader(in.Content, r.maxSize+1))
	if err == nil && written > r.maxSize {
		// Declared size lied; enforce the ceiling on actual bytes too.
		err = &Error{Kind: kind, Reason: ReasonFileTooLarge}
	}
	if cerr := tmp.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to finish upload write: %w", cerr)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to place uploaded file: %w", err)
	}

	s.logger.Info("Upload stored", map[string]interface{}{
		"kind":       string(kind),
		"filename":   filename,
		"size_bytes": written,
	})

	return filename, nil
}

// Remove deletes a previously stored file. Callers treat failure as
// non-fatal; it is logged here and the error returned for visibility.
func (s *Storage) Remove(kind Kind, filename string) error {
	if filename == "" {
		return nil
	}
	r, ok := s.rules[kind]
	if !ok {
		return fmt.Errorf("unknown upload kind: %s", kind)
	}

	if err := os.Remove(filepath.Join(r.dir, filename)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("Failed to remove stored file", map[string]interface{}{
			"kind":     string(kind),
			"filename": filename,
			"error":    err.Error(),
		})
		return err
	}
	return nil
}

// PublicURL builds the public URL for a stored file from the site base
// URL and the kind's relative upload path.
func (s *Storage) PublicURL(kind Kind, filename string) string {
	if filename == "" {
		return ""
	}
	r, ok := s.rules[kind]
	if !ok {
		return ""
	}
	return s.baseURL + "/" + filepath.ToSlash(filepath.Join(r.dir, filename))
}

// Dir exposes the destination directory for a kind (used in tests and
// cleanup tooling).
func (s *Storage) Dir(kind Kind) string {
	return s.rules[kind].dir
}

func allowed(types []string, contentType string) bool {
	// Strip any ;charset= style parameters before matching.
	if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
		contentType = contentType[:idx]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))

	for _, t := range types {
		if t == contentType {
			return true
		}
	}
	return false
}

// extension preserves the original file extension, lowercased. An
// unexpected extension is harmless since the content type already
// passed the allow-list.
func extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
