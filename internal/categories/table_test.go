package categories

import "testing"

func TestExtensionOf(t *testing.T) {
	cases := []struct {
		name string
		ext  string
		ok   bool
	}{
		{"photo.jpg", ".jpg", true},
		{"photo.JPG", ".jpg", true},
		{"archive.tar.GZ", ".gz", true},
		{"noextension", "", false},
		{".bashrc", "", false},
		{"trailing.", "", false},
		{".", "", false},
		{"..", "", false},
		{"dir/report.PDF", ".pdf", true},
	}
	for _, tc := range cases {
		ext, ok := ExtensionOf(tc.name)
		if ok != tc.ok || ext != tc.ext {
			t.Errorf("ExtensionOf(%q) = %q, %v; want %q, %v", tc.name, ext, ok, tc.ext, tc.ok)
		}
	}
}

func TestClassifyKnownExtensions(t *testing.T) {
	table := DefaultTable()
	cases := map[string]string{
		"photo.jpg":    "Images",
		"clip.mp4":     "Videos",
		"song.mp3":     "Audio",
		"report.pdf":   "Documents",
		"bundle.zip":   "Archives",
		"script.py":    "Scripts",
		"setup.exe":    "Executables",
		"face.ttf":     "Fonts",
		"dump.sqlite":  "Data",
		"deck.key":     "Presentations",
		"PHOTO.JPG":    "Images",
		"Mixed.CaSe.Pdf": "Documents",
	}
	for name, want := range cases {
		got, ok := table.Classify(name)
		if !ok || got != want {
			t.Errorf("Classify(%q) = %q, %v; want %q", name, got, ok, want)
		}
	}
}

func TestClassifyAbsentCases(t *testing.T) {
	table := DefaultTable()
	for _, name := range []string{"noextension", ".bashrc", "mystery.xyz", "trailing."} {
		if got, ok := table.Classify(name); ok {
			t.Errorf("Classify(%q) = %q, want no match", name, got)
		}
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// .csv appears under both Data and Spreadsheets in the default table;
	// Data is stored first, so Data must win.
	table := DefaultTable()
	if got, ok := table.Classify("report.csv"); !ok || got != "Data" {
		t.Fatalf("Classify(report.csv) = %q, %v; want Data", got, ok)
	}
	// .ppt appears under Documents before Presentations.
	if got, ok := table.Classify("deck.ppt"); !ok || got != "Documents" {
		t.Fatalf("Classify(deck.ppt) = %q, %v; want Documents", got, ok)
	}

	// A custom table with reversed order flips the winner.
	reversed := NewTable([]Category{
		{Name: "Spreadsheets", Extensions: []string{".csv"}},
		{Name: "Data", Extensions: []string{".csv"}},
	})
	if got, ok := reversed.Classify("report.csv"); !ok || got != "Spreadsheets" {
		t.Fatalf("reversed Classify(report.csv) = %q, %v; want Spreadsheets", got, ok)
	}
}

func TestTableIsCaseInsensitiveToStoredExtensions(t *testing.T) {
	table := NewTable([]Category{{Name: "Raw", Extensions: []string{".CR2"}}})
	if got, ok := table.Classify("shot.cr2"); !ok || got != "Raw" {
		t.Fatalf("Classify(shot.cr2) = %q, %v; want Raw", got, ok)
	}
}
