package constants

import "testing"

func TestDefaultValues(t *testing.T) {
	// Test that default values are set correctly
	if DefaultPort != "8080" {
		t.Errorf("Expected DefaultPort to be '8080', got '%s'", DefaultPort)
	}

	if DefaultDBPath != "soundvault.db" {
		t.Errorf("Expected DefaultDBPath to be 'soundvault.db', got '%s'", DefaultDBPath)
	}

	if DefaultUploadDir != "uploads" {
		t.Errorf("Expected DefaultUploadDir to be 'uploads', got '%s'", DefaultUploadDir)
	}
}

func TestUploadLimits(t *testing.T) {
	if MaxAudioFileSize != 50*1024*1024 {
		t.Errorf("Expected MaxAudioFileSize to be 50MB, got %d", MaxAudioFileSize)
	}

	if MaxCoverSize != 10*1024*1024 {
		t.Errorf("Expected MaxCoverSize to be 10MB, got %d", MaxCoverSize)
	}
}

func TestServingPrefixes(t *testing.T) {
	prefixes := []string{
		AudioPathPrefix,
		CoversPathPrefix,
	}

	for _, p := range prefixes {
		if p == "" {
			t.Error("Serving prefix constant should not be empty")
		}
		// Should start and end with /
		if p[0] != '/' || p[len(p)-1] != '/' {
			t.Errorf("Serving prefix %s should start and end with /", p)
		}
	}
}

func TestMimeTypes(t *testing.T) {
	types := []string{
		MimeTypeJPEG,
		MimeTypePNG,
	}

	for _, m := range types {
		if m == "" {
			t.Error("MIME type constant should not be empty")
		}
	}
}

func TestFileExtensions(t *testing.T) {
	extensions := []string{
		ExtFLAC,
		ExtMP3,
		ExtWAV,
		ExtM4A,
		ExtAAC,
		ExtOGG,
		ExtJPG,
		ExtPNG,
	}

	for _, ext := range extensions {
		if ext == "" {
			t.Error("File extension constant should not be empty")
		}
		// Should start with .
		if ext[0] != '.' {
			t.Errorf("File extension %s should start with .", ext)
		}
	}
}

func TestInvalidPathChars(t *testing.T) {
	if InvalidPathChars == "" {
		t.Error("InvalidPathChars should not be empty")
	}
}
