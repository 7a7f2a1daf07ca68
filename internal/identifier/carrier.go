package identifier

import "strings"

// Canonical shipping line names used throughout the system.
const (
	LineMaersk     = "Maersk"
	LineMSC        = "MSC"
	LineCMACGM     = "CMA CGM"
	LineHapagLloyd = "Hapag-Lloyd"
	LineONE        = "ONE"
	LineEvergreen  = "Evergreen"
	LineCOSCO      = "COSCO"
	LineZIM        = "ZIM"
	LinePIL        = "PIL"
	LineGeneric    = "Generic"
)

// ownerCodeLines maps 4-letter SCAC/BIC owner-code prefixes seen on
// bills of lading at the port of Conakry to their carriers.
var ownerCodeLines = map[string]string{
	"MAEU": LineMaersk,
	"MSKU": LineMaersk,
	"MSCU": LineMSC,
	"MEDU": LineMSC,
	"CMDU": LineCMACGM,
	"CMAU": LineCMACGM,
	"HLCU": LineHapagLloyd,
	"HLXU": LineHapagLloyd,
	"ONEY": LineONE,
	"EGLV": LineEvergreen,
	"EGHU": LineEvergreen,
	"COSU": LineCOSCO,
	"ZIMU": LineZIM,
	"PCIU": LinePIL,
}

// lineSynonyms resolves free-text carrier names typed by operators.
// Keys are lower case with collapsed separators.
var lineSynonyms = map[string]string{
	"maersk":                        LineMaersk,
	"maersk line":                   LineMaersk,
	"msc":                           LineMSC,
	"mediterranean shipping":        LineMSC,
	"mediterranean shipping company": LineMSC,
	"cma":                           LineCMACGM,
	"cma cgm":                       LineCMACGM,
	"cmacgm":                        LineCMACGM,
	"hapag":                         LineHapagLloyd,
	"hapag lloyd":                   LineHapagLloyd,
	"hapaglloyd":                    LineHapagLloyd,
	"hlag":                          LineHapagLloyd,
	"one":                           LineONE,
	"ocean network express":         LineONE,
	"evergreen":                     LineEvergreen,
	"evergreen marine":              LineEvergreen,
	"cosco":                         LineCOSCO,
	"cosco shipping":                LineCOSCO,
	"zim":                           LineZIM,
	"pil":                           LinePIL,
	"pacific international lines":   LinePIL,
}

// DetectShippingLine inspects the 4-letter owner-code prefix of a
// normalized bill of lading and returns the carrier it belongs to.
// The second return is false when no known prefix matches.
func DetectShippingLine(blNumber string) (string, bool) {
	normalized := NormalizeBL(blNumber)
	if len(normalized) < 4 {
		return "", false
	}
	line, ok := ownerCodeLines[normalized[:4]]
	return line, ok
}

// NormalizeShippingLine maps free text to a canonical carrier name,
// falling back to Generic when nothing matches.
func NormalizeShippingLine(freeText string) string {
	key := strings.ToLower(strings.TrimSpace(freeText))
	key = strings.ReplaceAll(key, "-", " ")
	key = strings.Join(strings.Fields(key), " ")
	if line, ok := lineSynonyms[key]; ok {
		return line
	}
	return LineGeneric
}
