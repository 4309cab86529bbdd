package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openhiring/internal/config"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()

	cfg := &config.Config{}
	cfg.Site.BaseURL = "http://localhost:8080/"
	cfg.Uploads.LogoDir = filepath.Join(t.TempDir(), "logos")
	cfg.Uploads.ResumeDir = filepath.Join(t.TempDir(), "resumes")
	cfg.Uploads.MaxLogoSize = 1 << 20
	cfg.Uploads.MaxResumeSize = 2 << 20

	return NewStorage(cfg)
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return entries
}

func TestSaveRejectsMissingFile(t *testing.T) {
	s := testStorage(t)

	_, err := s.Save(Input{}, KindResume)

	var rejection *Error
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, ReasonMissing, rejection.Reason)
	assert.True(t, IsRejection(err))
}

func TestSaveRejectsDisallowedType(t *testing.T) {
	s := testStorage(t)

	_, err := s.Save(Input{
		Filename:    "evil.exe",
		ContentType: "application/octet-stream",
		Size:        100,
		Content:     strings.NewReader("MZ"),
	}, KindResume)

	var rejection *Error
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, ReasonBadType, rejection.Reason)
	assert.Empty(t, dirEntries(t, s.Dir(KindResume)), "rejected upload must not touch the filesystem")
}

func TestSaveRejectsDeclaredOversize(t *testing.T) {
	s := testStorage(t)

	_, err := s.Save(Input{
		Filename:    "big.pdf",
		ContentType: "application/pdf",
		Size:        3 << 20,
		Content:     strings.NewReader("does not matter"),
	}, KindResume)

	var rejection *Error
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, ReasonFileTooLarge, rejection.Reason)
	assert.Empty(t, dirEntries(t, s.Dir(KindResume)))
}

func TestSaveRejectsLyingDeclaredSize(t *testing.T) {
	s := testStorage(t)

	// Declared within the logo limit, actual content over it.
	oversized := strings.Repeat("x", (1<<20)+10)
	_, err := s.Save(Input{
		Filename:    "logo.png",
		ContentType: "image/png",
		Size:        500,
		Content:     strings.NewReader(oversized),
	}, KindLogo)

	var rejection *Error
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, ReasonFileTooLarge, rejection.Reason)
	assert.Empty(t, dirEntries(t, s.Dir(KindLogo)), "failed write must leave no partial file")
}

func TestSaveStoresAcceptedFile(t *testing.T) {
	s := testStorage(t)
	content := "%PDF-1.4 fake resume"

	filename, err := s.Save(Input{
		Filename:    "My Resume.PDF",
		ContentType: "application/pdf; charset=binary",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}, KindResume)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(filename, ".pdf"), "extension preserved lowercased")
	assert.NotContains(t, filename, "My Resume", "stored name must not reuse the client filename")

	stored, err := os.ReadFile(filepath.Join(s.Dir(KindResume), filename))
	require.NoError(t, err)
	assert.Equal(t, content, string(stored))

	entries := dirEntries(t, s.Dir(KindResume))
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestSaveGeneratesDistinctNames(t *testing.T) {
	s := testStorage(t)

	first, err := s.Save(Input{
		Filename: "resume.pdf", ContentType: "application/pdf",
		Size: 4, Content: strings.NewReader("one"),
	}, KindResume)
	require.NoError(t, err)

	second, err := s.Save(Input{
		Filename: "resume.pdf", ContentType: "application/pdf",
		Size: 4, Content: strings.NewReader("two"),
	}, KindResume)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRemove(t *testing.T) {
	s := testStorage(t)

	filename, err := s.Save(Input{
		Filename: "logo.png", ContentType: "image/png",
		Size: 3, Content: strings.NewReader("png"),
	}, KindLogo)
	require.NoError(t, err)

	require.NoError(t, s.Remove(KindLogo, filename))
	assert.Empty(t, dirEntries(t, s.Dir(KindLogo)))

	assert.NoError(t, s.Remove(KindLogo, "already-gone.png"), "missing file is not an error")
	assert.NoError(t, s.Remove(KindLogo, ""), "empty name is a no-op")
}

func TestPublicURL(t *testing.T) {
	s := testStorage(t)

	url := s.PublicURL(KindLogo, "abc.png")
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/"))
	assert.True(t, strings.HasSuffix(url, "/abc.png"))

	assert.Empty(t, s.PublicURL(KindLogo, ""))
}
