package snippets

import "regexp"

// languagePattern pairs a language label with a telltale syntax pattern.
// Order matters: the first match wins, so the more distinctive patterns
// come before the generic ones.
type languagePattern struct {
	language string
	pattern  *regexp.Regexp
}

var languagePatterns = []languagePattern{
	{"javascript", regexp.MustCompile(`function|const |let |var |=>|console\.log`)},
	{"typescript", regexp.MustCompile(`interface |type |enum |as \w+|: *\w+\[\]`)},
	{"python", regexp.MustCompile(`(?m)def |import |from |print\(|if __name__|: *$`)},
	{"java", regexp.MustCompile(`public class|private|protected|void|System\.out`)},
	{"cpp", regexp.MustCompile(`#include|using namespace|cout|cin`)},
	{"csharp", regexp.MustCompile(`using System|public class|Console\.WriteLine`)},
	{"swift", regexp.MustCompile(`func .*-> *\w|guard let |@objc|import Foundation`)},
	{"kotlin", regexp.MustCompile(`fun |val |var |println\(`)},
	{"php", regexp.MustCompile(`<\?php|\$\w+|echo |function`)},
	{"ruby", regexp.MustCompile(`def |puts |require |class .*<`)},
	{"go", regexp.MustCompile(`func |package |import |fmt\.`)},
	{"rust", regexp.MustCompile(`fn |let |mut |println!|use `)},
	{"html", regexp.MustCompile(`<html|<!DOCTYPE|<div|<span`)},
	{"css", regexp.MustCompile(`\.[\w-]+ *\{|#[\w-]+ *\{|@media`)},
	{"sql", regexp.MustCompile(`(?i)SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER`)},
}

// DetectLanguage guesses the programming language of a code snippet from
// syntax patterns. Returns "text" when nothing matches.
func DetectLanguage(code string) string {
	for _, lp := range languagePatterns {
		if lp.pattern.MatchString(code) {
			return lp.language
		}
	}
	return "text"
}
