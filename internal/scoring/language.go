// Package scoring converts language-test scores and grades between scales and
// computes the qualitative bonus applied on top of a match score.
package scoring

// Language test identifiers accepted by NormalizeLanguageScore.
const (
	TestTOEFL        = "toefl"
	TestIELTS        = "ielts"
	TestCambridgeCAE = "cambridge_cae"
	TestCambridgeCPE = "cambridge_cpe"
	TestPTE          = "pte"
	TestDuolingo     = "duolingo"
	TestTOEIC        = "toeic"
	TestYDS          = "yds"
	TestYOKDIL       = "yokdil"
	TestTestDaF      = "testdaf"
	TestGoethe       = "goethe"
	TestDSH          = "dsh"
	TestDELF         = "delf"
	TestDALF         = "dalf"
	TestTCF          = "tcf"
)

// languageTestMax is the nominal maximum of each linearly scaled test.
var languageTestMax = map[string]float64{
	TestTOEFL:        120,
	TestIELTS:        9,
	TestCambridgeCAE: 210,
	TestCambridgeCPE: 230,
	TestPTE:          90,
	TestDuolingo:     160,
	TestTOEIC:        990,
	TestTestDaF:      5,
	TestDSH:          3,
	TestTCF:          699,
}

// percentScaleTests already report on a 0-100 scale.
var percentScaleTests = map[string]bool{
	TestYDS:    true,
	TestYOKDIL: true,
	TestGoethe: true,
	TestDELF:   true,
	TestDALF:   true,
}

// NormalizeLanguageScore maps a test score onto a 0-100 scale.
// Scores above a test's nominal maximum are not capped. Unknown tests yield 0.
func NormalizeLanguageScore(testType string, score float64) float64 {
	if nominal, ok := languageTestMax[testType]; ok {
		return (score / nominal) * 100
	}
	if percentScaleTests[testType] {
		return score
	}
	return 0
}
