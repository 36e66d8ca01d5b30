package ena

import "strings"

// FTPToHTTPS derives the HTTPS equivalent of an FTP path reported by the
// archive. The transform is purely textual: an ftp:// scheme is replaced,
// a scheme-less host-relative path is prefixed, and a string that already
// carries an http(s) scheme is returned unchanged, so applying the
// transform twice is a no-op. No network validation is performed.
func FTPToHTTPS(path string) string {
	switch {
	case strings.HasPrefix(path, "https://"), strings.HasPrefix(path, "http://"):
		return path
	case strings.HasPrefix(path, "ftp://"):
		return "https://" + strings.TrimPrefix(path, "ftp://")
	default:
		return "https://" + path
	}
}

// SplitFieldList splits a semicolon-separated portal field value such as
// fastq_ftp or fastq_md5. An empty value yields no entries.
func SplitFieldList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DeriveHTTPSURLs splits a semicolon-separated fastq_ftp value and converts
// each path to its HTTPS form.
func DeriveHTTPSURLs(fastqFTP string) []string {
	paths := SplitFieldList(fastqFTP)
	urls := make([]string, len(paths))
	for i, p := range paths {
		urls[i] = FTPToHTTPS(p)
	}
	return urls
}
