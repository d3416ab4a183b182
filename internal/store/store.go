package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var supportedExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".aac":  true,
	".ogg":  true,
	".flac": true,
	".wma":  true,
	".aiff": true,
	".alac": true,
	".opus": true,
	".webm": true,
}

// IsAudioFile reports whether the filename carries a supported audio
// extension. Matching is case-insensitive.
func IsAudioFile(name string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(name))]
}

func (s *implStore) EnsureDirs() error {
	dirs := []string{
		s.paths.Audio,
		s.paths.Transcripts,
		s.paths.Notes,
		s.paths.Templates,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

func (s *implStore) ListAudio() ([]string, error) {
	entries, err := os.ReadDir(s.paths.Audio)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read audio directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsAudioFile(e.Name()) {
			files = append(files, filepath.Join(s.paths.Audio, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

func (s *implStore) ResolveAudio(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	candidate := filepath.Join(s.paths.Audio, filepath.Base(name))
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}

	return "", fmt.Errorf("audio file not found: %s", name)
}

func (s *implStore) SaveTranscript(audioName, text string) (string, error) {
	now := s.now()
	filename := fmt.Sprintf("%s_%s_transcript.md", now.Format("20060102"), stem(audioName))

	var b strings.Builder
	fmt.Fprintf(&b, "# Transcription: %s\n\n", filepath.Base(audioName))
	fmt.Fprintf(&b, "*Date: %s*\n\n", now.Format("January 2, 2006"))
	fmt.Fprintf(&b, "## Raw Transcript\n\n%s\n", text)

	return s.write(s.paths.Transcripts, filename, b.String())
}

func (s *implStore) SaveNote(audioName, text string) (string, error) {
	now := s.now()
	name := stem(audioName)
	filename := fmt.Sprintf("%s_%s_summary.md", now.Format("20060102"), name)

	var b strings.Builder
	fmt.Fprintf(&b, "# Summary of: %s\n\n", name)
	fmt.Fprintf(&b, "*Generated on: %s*\n\n", now.Format("January 2, 2006"))
	b.WriteString(text)
	b.WriteString("\n")

	return s.write(s.paths.Notes, filename, b.String())
}

func (s *implStore) write(dir, filename, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}

// stem returns the filename without directory or extension.
func stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
