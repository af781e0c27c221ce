package constants

const (
	// MinTextRunes is the sufficiency gate for extracted text.
	MinTextRunes = 10

	// AdvisoryMinTextRunes is the acceptance threshold for the prefix re-parse
	// done on the advisory path for scanned PDFs.
	AdvisoryMinTextRunes = 30

	// MaxImageBytesDefault is the hard ceiling for vision OCR input (500 KiB).
	MaxImageBytesDefault = 500 * 1024

	// AdvisoryScanBytesDefault caps how much of a PDF the advisory path re-parses (1 MiB).
	AdvisoryScanBytesDefault = 1024 * 1024

	// MaxBioRunes is the longest personal bio accepted for optimization.
	MaxBioRunes = 1000

	// BioVersionCount is how many rewritten bios the model is asked for.
	BioVersionCount = 3

	// BioVersionMaxRunes bounds each rewritten bio.
	BioVersionMaxRunes = 300

	// VersionSeparator splits multi-version model output.
	VersionSeparator = "===版本分隔==="
)
