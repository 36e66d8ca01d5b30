package ena

import "testing"

func TestFTPToHTTPS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ftp scheme", "ftp://ftp.sra.ebi.ac.uk/vol1/fastq/ERR001/ERR001.fastq.gz", "https://ftp.sra.ebi.ac.uk/vol1/fastq/ERR001/ERR001.fastq.gz"},
		{"bare host path", "ftp.sra.ebi.ac.uk/vol1/fastq/ERR001/ERR001.fastq.gz", "https://ftp.sra.ebi.ac.uk/vol1/fastq/ERR001/ERR001.fastq.gz"},
		{"already https", "https://ftp.sra.ebi.ac.uk/vol1/file.gz", "https://ftp.sra.ebi.ac.uk/vol1/file.gz"},
		{"plain http left alone", "http://example.org/file.gz", "http://example.org/file.gz"},
		{"minimal ftp", "ftp://host/path", "https://host/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FTPToHTTPS(tt.input)
			if got != tt.expected {
				t.Errorf("FTPToHTTPS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			// Idempotent: a second application is a no-op.
			if again := FTPToHTTPS(got); again != got {
				t.Errorf("FTPToHTTPS is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestSplitFieldList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"single", "a/b.gz", 1},
		{"pair", "a_1.gz;a_2.gz", 2},
		{"trailing separator", "a_1.gz;", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitFieldList(tt.input); len(got) != tt.expected {
				t.Errorf("SplitFieldList(%q) = %v, want %d entries", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDeriveHTTPSURLs(t *testing.T) {
	urls := DeriveHTTPSURLs("host/a_1.fastq.gz;ftp://host/a_2.fastq.gz")
	if len(urls) != 2 {
		t.Fatalf("expected 2 URLs, got %v", urls)
	}
	if urls[0] != "https://host/a_1.fastq.gz" || urls[1] != "https://host/a_2.fastq.gz" {
		t.Errorf("unexpected URLs: %v", urls)
	}
}
