// Package data provides static lookup tables for language codes.
package data

// languageNames maps ISO 639-1 codes to English language names. The table
// covers the languages commonly seen in game and application catalogs; an
// unknown code is simply shown as-is by callers.
var languageNames = map[string]string{
	"ar": "Arabic",
	"bg": "Bulgarian",
	"ca": "Catalan",
	"cs": "Czech",
	"da": "Danish",
	"de": "German",
	"el": "Greek",
	"en": "English",
	"es": "Spanish",
	"fa": "Persian",
	"fi": "Finnish",
	"fr": "French",
	"he": "Hebrew",
	"hi": "Hindi",
	"hu": "Hungarian",
	"id": "Indonesian",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"ms": "Malay",
	"nl": "Dutch",
	"no": "Norwegian",
	"pl": "Polish",
	"pt": "Portuguese",
	"ro": "Romanian",
	"ru": "Russian",
	"sk": "Slovak",
	"sv": "Swedish",
	"th": "Thai",
	"tr": "Turkish",
	"uk": "Ukrainian",
	"vi": "Vietnamese",
	"zh": "Chinese",
}

// GetLanguageName returns the English name for an ISO 639-1 language code,
// or "" when the code is unknown.
func GetLanguageName(code string) string {
	return languageNames[code]
}
