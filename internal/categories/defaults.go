package categories

// defaultCategories is the built-in rulebook, written to the categories file
// the first time the tool runs. The .csv/.xls/.ppt overlaps between
// Documents, Data, Presentations, and Spreadsheets are historical; stored
// order decides which category such a file lands in.
func defaultCategories() []Category {
	return []Category{
		{Name: "Images", Extensions: []string{
			".jpg", ".jpeg", ".jpe", ".jif", ".jfif", ".jfi", ".png", ".gif",
			".webp", ".tiff", ".tif", ".psd", ".raw", ".arw", ".cr2", ".nrw",
			".k25", ".bmp", ".dib", ".heif", ".heic", ".ind", ".indd", ".indt",
			".jp2", ".j2k", ".jpf", ".jpx", ".jpm", ".mj2", ".svg", ".svgz",
			".ai", ".eps",
		}},
		{Name: "Videos", Extensions: []string{
			".webm", ".mpg", ".mp2", ".mpeg", ".mpe", ".mpv", ".ogg", ".mp4",
			".m4p", ".m4v", ".avi", ".wmv", ".mov", ".qt", ".flv", ".swf",
			".avchd",
		}},
		{Name: "Audio", Extensions: []string{
			".m4a", ".flac", ".mp3", ".wav", ".wma", ".aac",
		}},
		{Name: "Documents", Extensions: []string{
			".doc", ".docx", ".odt", ".pdf", ".xls", ".xlsx", ".ods", ".ppt",
			".pptx", ".odp", ".txt", ".rtf", ".md",
		}},
		{Name: "Archives", Extensions: []string{
			".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".iso", ".dmg",
		}},
		{Name: "Scripts", Extensions: []string{
			".py", ".js", ".ts", ".html", ".htm", ".css", ".scss", ".java",
			".c", ".cpp", ".h", ".cs", ".sh", ".bat", ".php", ".go", ".swift",
			".sql", ".json", ".xml", ".yml", ".yaml",
		}},
		{Name: "Executables", Extensions: []string{
			".exe", ".msi", ".app", ".deb", ".rpm",
		}},
		{Name: "Fonts", Extensions: []string{
			".ttf", ".otf", ".woff", ".woff2",
		}},
		{Name: "Data", Extensions: []string{
			".csv", ".dat", ".db", ".log", ".mdb", ".sav", ".sqlite", ".dbf",
		}},
		{Name: "Presentations", Extensions: []string{
			".ppt", ".pptx", ".odp", ".key",
		}},
		{Name: "Spreadsheets", Extensions: []string{
			".xls", ".xlsx", ".ods", ".csv",
		}},
	}
}

// DefaultTable returns the built-in category table.
func DefaultTable() *Table {
	return NewTable(defaultCategories())
}
