package internal

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase converts a header name to its canonical form: "content-type" to "Content-Type".
// A caser keeps state between calls, so one is created per conversion.
func TitleCase(content string) string {
	return cases.Title(language.English).String(content)
}

// LowerASCII lower-cases ASCII letters only, leaving every other byte untouched.
func LowerASCII(content string) string {
	for i := 0; i < len(content); i++ {
		if c := content[i]; 'A' <= c && c <= 'Z' {
			buf := []byte(content)
			for j := i; j < len(buf); j++ {
				if 'A' <= buf[j] && buf[j] <= 'Z' {
					buf[j] += 'a' - 'A'
				}
			}
			return string(buf)
		}
	}
	return content
}
