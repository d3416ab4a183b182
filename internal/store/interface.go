package store

// Store manages the audio library and the persisted pipeline outputs.
type Store interface {
	// EnsureDirs creates the audio, transcript, note and template
	// directories if they do not exist.
	EnsureDirs() error

	// ListAudio returns the supported audio files in the audio directory,
	// sorted lexicographically by filename. A missing directory yields an
	// empty list, not an error.
	ListAudio() ([]string, error)

	// ResolveAudio resolves a user-supplied name to an audio file path,
	// first as given, then inside the audio directory.
	ResolveAudio(name string) (string, error)

	// SaveTranscript writes the transcript as a timestamped markdown file
	// and returns its path.
	SaveTranscript(audioName, text string) (string, error)

	// SaveNote writes the case note as a timestamped markdown file and
	// returns its path.
	SaveNote(audioName, text string) (string, error)

	// ExportDocx writes the case note as a styled .docx next to the
	// markdown output and returns its path.
	ExportDocx(audioName, markdown string) (string, error)
}
