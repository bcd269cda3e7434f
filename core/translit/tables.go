package translit

// IAST to Devanagari mapping tables. Multi-rune clusters (aspirated
// consonants, diphthongs, long syllabic vowels) must be matched before
// their single-rune prefixes; the scanner tries the longest candidate
// first, so "kh" never degrades into "k"+"h" and "ai" never into "a"+"i".

// maxClusterLen is the longest IAST cluster in any table, in runes.
const maxClusterLen = 2

// virama joins consonants into clusters and closes word-final consonants.
const virama = '्'

// consonants maps IAST consonant clusters to Devanagari consonant letters.
var consonants = map[string]rune{
	"k": 'क', "kh": 'ख', "g": 'ग', "gh": 'घ', "ṅ": 'ङ',
	"c": 'च', "ch": 'छ', "j": 'ज', "jh": 'झ', "ñ": 'ञ',
	"ṭ": 'ट', "ṭh": 'ठ', "ḍ": 'ड', "ḍh": 'ढ', "ṇ": 'ण',
	"t": 'त', "th": 'थ', "d": 'द', "dh": 'ध', "n": 'न',
	"p": 'प', "ph": 'फ', "b": 'ब', "bh": 'भ', "m": 'म',
	"y": 'य', "r": 'र', "l": 'ल', "v": 'व',
	"ś": 'श', "ṣ": 'ष', "s": 'स', "h": 'ह',
	"ḻ": 'ळ',
}

// independentVowels maps IAST vowels to their word-initial Devanagari forms.
var independentVowels = map[string]rune{
	"a": 'अ', "ā": 'आ', "i": 'इ', "ī": 'ई',
	"u": 'उ', "ū": 'ऊ', "ṛ": 'ऋ', "ṝ": 'ॠ',
	"ḷ": 'ऌ', "ḹ": 'ॡ', "e": 'ए', "ai": 'ऐ',
	"o": 'ओ', "au": 'औ',
}

// dependentVowels maps IAST vowels to their post-consonant matra forms.
// The inherent "a" has no matra and is represented by the empty string.
var dependentVowels = map[string]string{
	"a": "", "ā": "ा", "i": "ि", "ī": "ी",
	"u": "ु", "ū": "ू", "ṛ": "ृ", "ṝ": "ॄ",
	"ḷ": "ॢ", "ḹ": "ॣ", "e": "े", "ai": "ै",
	"o": "ो", "au": "ौ",
}

// signs maps IAST nasalization and aspiration signs to combining marks.
var signs = map[string]rune{
	"ṃ": 'ं', // anusvara
	"ṁ": 'ं', // anusvara (ISO 15919 variant)
	"m̐": 'ँ', // candrabindu
	"ḥ": 'ः', // visarga
}

// standalone maps non-combining symbols emitted as-is.
var standalone = map[string]rune{
	"'": 'ऽ', // avagraha
	"’": 'ऽ', // avagraha (typographic apostrophe)
}

// punctuation maps romanized verse punctuation onto danda marks.
var punctuation = map[string]string{
	"||": "॥",
	"|":  "।",
}

// digits maps ASCII digits to Devanagari digits, applied only when number
// preservation is off.
var digits = map[rune]rune{
	'0': '०', '1': '१', '2': '२', '3': '३', '4': '४',
	'5': '५', '6': '६', '7': '७', '8': '८', '9': '९',
}

// iastDiacritics is the set of diacritic-marked Latin letters that signal
// IAST text. Plain ASCII prose never contains these.
var iastDiacritics = map[rune]bool{
	'ā': true, 'ī': true, 'ū': true,
	'ṛ': true, 'ṝ': true, 'ḷ': true, 'ḹ': true,
	'ṃ': true, 'ṁ': true, 'ḥ': true,
	'ś': true, 'ṣ': true,
	'ṭ': true, 'ḍ': true, 'ṇ': true, 'ñ': true, 'ṅ': true, 'ḻ': true,
	'Ā': true, 'Ī': true, 'Ū': true,
	'Ṛ': true, 'Ṝ': true, 'Ḷ': true, 'Ḹ': true,
	'Ṃ': true, 'Ṁ': true, 'Ḥ': true,
	'Ś': true, 'Ṣ': true,
	'Ṭ': true, 'Ḍ': true, 'Ṇ': true, 'Ñ': true, 'Ṅ': true, 'Ḻ': true,
}
